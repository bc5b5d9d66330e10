package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/doumi-inc/doumi-api/external/cadence"
	"github.com/doumi-inc/doumi-api/schema"
)

type ReminderWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env           *testsuite.TestWorkflowEnvironment
	worker        *ReminderWorker
	testMeetingID string
}

func (ts *ReminderWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.testMeetingID = "test-meeting-id"
	ts.worker = reminderWorker
}

func (ts *ReminderWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadence.NewMsgPackDataConverter(),
	})
}

func (ts *ReminderWorkflowTestSuite) TestMeetingReminderWorkflowFiresBothBoundaries() {
	ts.env.OnActivity(ts.worker.GetAcceptedMeetingActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, meetingID string) (*schema.Meeting, error) {
			ts.Equal(ts.testMeetingID, meetingID)
			return &schema.Meeting{
				ID:          meetingID,
				Status:      schema.MeetingStateAccepted,
				ScheduledAt: time.Now().Add(2 * time.Hour),
			}, nil
		})

	ts.env.OnActivity(ts.worker.FireMeetingReminderActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, meetingID string) error {
			ts.Equal(ts.testMeetingID, meetingID)
			return nil
		})

	ts.env.OnActivity(ts.worker.MarkCallDueActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, meetingID string) error {
			ts.Equal(ts.testMeetingID, meetingID)
			return nil
		})

	ts.env.ExecuteWorkflow(ts.worker.MeetingReminderWorkflow, ts.testMeetingID)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
	ts.env.AssertNumberOfCalls(ts.T(), "FireMeetingReminderActivity", 1)
	ts.env.AssertNumberOfCalls(ts.T(), "MarkCallDueActivity", 1)
}

func (ts *ReminderWorkflowTestSuite) TestMeetingReminderWorkflowNothingToSchedule() {
	ts.env.OnActivity(ts.worker.GetAcceptedMeetingActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, meetingID string) (*schema.Meeting, error) {
			// rejected or gone; the workflow has nothing left to do
			return nil, nil
		})

	ts.env.ExecuteWorkflow(ts.worker.MeetingReminderWorkflow, ts.testMeetingID)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
	ts.env.AssertNumberOfCalls(ts.T(), "FireMeetingReminderActivity", 0)
	ts.env.AssertNumberOfCalls(ts.T(), "MarkCallDueActivity", 0)
}

func (ts *ReminderWorkflowTestSuite) TestMeetingReminderWorkflowAcceptedInsideReminderWindow() {
	ts.env.OnActivity(ts.worker.GetAcceptedMeetingActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, meetingID string) (*schema.Meeting, error) {
			// less than the reminder lead away: the heads-up would be late
			return &schema.Meeting{
				ID:          meetingID,
				Status:      schema.MeetingStateAccepted,
				ScheduledAt: time.Now().Add(10 * time.Minute),
			}, nil
		})

	ts.env.OnActivity(ts.worker.MarkCallDueActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, meetingID string) error {
			return nil
		})

	ts.env.ExecuteWorkflow(ts.worker.MeetingReminderWorkflow, ts.testMeetingID)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
	ts.env.AssertNumberOfCalls(ts.T(), "FireMeetingReminderActivity", 0)
	ts.env.AssertNumberOfCalls(ts.T(), "MarkCallDueActivity", 1)
}

func TestReminderWorkflow(t *testing.T) {
	suite.Run(t, new(ReminderWorkflowTestSuite))
}
