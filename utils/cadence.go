package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/doumi-inc/doumi-api/external/cadence"
)

// FIXME: there will be an import cycle if we use `github.com/doumi-inc/doumi-api/background/reminder`
const ReminderTaskListName = "doumi-reminder-tasks"

// TriggerMeetingReminder starts (or signals, if already running) the
// durable reminder workflow of an accepted meeting. The workflow id is
// keyed by meeting id, so accepting the same meeting twice never spawns a
// second timer chain.
func TriggerMeetingReminder(client *cadence.CadenceClient, c context.Context, meetingID string, scheduledAt time.Time) error {
	timeout := time.Until(scheduledAt) + time.Hour
	if timeout < time.Hour {
		timeout = time.Hour
	}

	_, err := client.SignalWithStartWorkflow(c,
		fmt.Sprintf("meeting-reminder-%s", meetingID), "meetingAcceptedSignal", nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           fmt.Sprintf("meeting-reminder-%s", meetingID),
			TaskList:                     ReminderTaskListName,
			ExecutionStartToCloseTimeout: timeout,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, "MeetingReminderWorkflow", meetingID)
	return err
}
