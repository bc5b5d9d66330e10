package reminder

import (
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/doumi-inc/doumi-api/background"
	"github.com/doumi-inc/doumi-api/external/push"
	"github.com/doumi-inc/doumi-api/store"
)

const TaskListName = "doumi-reminder-tasks"

// ReminderWorker drives the durable timers of accepted meetings: one
// workflow per meeting, started when the non-proposer accepts.
type ReminderWorker struct {
	background.Background
	domain string
	mongo  store.MongoStore
}

func NewReminderWorker(domain string, mongo store.MongoStore, dispatch *machinery.Server) *ReminderWorker {
	p := push.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	b := background.Background{Push: p, Dispatch: dispatch}
	return &ReminderWorker{
		Background: b,
		domain:     domain,
		mongo:      mongo,
	}
}

func (r *ReminderWorker) Register() {
	workflow.RegisterWithOptions(r.MeetingReminderWorkflow, workflow.RegisterOptions{Name: "MeetingReminderWorkflow"})

	activity.RegisterWithOptions(r.GetAcceptedMeetingActivity, activity.RegisterOptions{Name: "GetAcceptedMeetingActivity"})
	activity.RegisterWithOptions(r.FireMeetingReminderActivity, activity.RegisterOptions{Name: "FireMeetingReminderActivity"})
	activity.RegisterWithOptions(r.MarkCallDueActivity, activity.RegisterOptions{Name: "MarkCallDueActivity"})
}

func (r *ReminderWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		r.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
