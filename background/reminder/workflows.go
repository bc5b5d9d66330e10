package reminder

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/doumi-inc/doumi-api/schema"
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// MeetingReminderWorkflow walks an accepted meeting through its two time
// boundaries: the one-shot reminder at T-30min and the call-due transition
// at the scheduled moment. The workflow is keyed by meeting id, so repeated
// acceptance signals reuse the same execution; the activities re-check
// store state, so replays and retries never double-fire.
func (r *ReminderWorker) MeetingReminderWorkflow(ctx workflow.Context, meetingID string) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	logger := workflow.GetLogger(ctx)

	var meeting *schema.Meeting
	if err := workflow.ExecuteActivity(ctx, r.GetAcceptedMeetingActivity, meetingID).Get(ctx, &meeting); err != nil {
		logger.Error("Fail to load meeting", zap.Error(err), zap.String("meetingID", meetingID))
		sentry.CaptureException(err)
		return err
	}

	if meeting == nil {
		logger.Info("Meeting is not accepted. Nothing to schedule", zap.String("meetingID", meetingID))
		return nil
	}

	now := workflow.Now(ctx)
	reminderAt := meeting.ScheduledAt.Add(-schema.ReminderLead)

	if reminderAt.After(now) {
		if err := workflow.Sleep(ctx, reminderAt.Sub(now)); err != nil {
			return err
		}

		if err := workflow.ExecuteActivity(ctx, r.FireMeetingReminderActivity, meetingID).Get(ctx, nil); err != nil {
			logger.Error("Fail to fire meeting reminder", zap.Error(err), zap.String("meetingID", meetingID))
			sentry.CaptureException(err)
			return err
		}
	} else {
		// accepted inside the reminder window; the 30-minute heads-up
		// would arrive late, so only the call-due boundary remains
		logger.Info("Meeting accepted inside the reminder window", zap.String("meetingID", meetingID))
	}

	now = workflow.Now(ctx)
	if meeting.ScheduledAt.After(now) {
		if err := workflow.Sleep(ctx, meeting.ScheduledAt.Sub(now)); err != nil {
			return err
		}
	}

	if err := workflow.ExecuteActivity(ctx, r.MarkCallDueActivity, meetingID).Get(ctx, nil); err != nil {
		logger.Error("Fail to mark meeting call-due", zap.Error(err), zap.String("meetingID", meetingID))
		sentry.CaptureException(err)
		return err
	}

	return nil
}
