package api

import (
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/doumi-inc/doumi-api/background"
	"github.com/doumi-inc/doumi-api/schema"
)

// deliverAsync runs deliverNotification off the request path. The wait
// group lets tests and shutdown drain in-flight deliveries instead of
// racing them.
func (s *Server) deliverAsync(msgType string, templateData map[string]interface{}, proto schema.Notification, task *tasks.Signature, recipients ...string) {
	s.notifier.Add(1)
	go func() {
		defer s.notifier.Done()
		s.deliverNotification(msgType, templateData, proto, task, recipients...)
	}()
}

// deliverNotification journals one notification per recipient, fans it out
// to the recipients' connected sessions, and hands the external push over
// to the job pool. Delivery failures never bubble into the API response:
// the state transition already happened and the notification feed is the
// source of truth for clients to catch up from.
func (s *Server) deliverNotification(msgType string, templateData map[string]interface{}, proto schema.Notification, task *tasks.Signature, recipients ...string) {
	logger := log.WithField("api", "deliverNotification")

	headings, contents, err := background.LocalizedMessage(msgType, templateData)
	if err != nil {
		logger.WithError(err).Error("fail to localize notification")
		return
	}

	for _, recipient := range recipients {
		n := proto
		n.Recipient = recipient
		n.Title = headings["ko"]
		n.Message = contents["ko"]

		saved, err := s.mongoStore.SaveNotification(&n)
		if err != nil {
			logger.WithError(err).WithField("recipient", recipient).Error("fail to journal notification")
			continue
		}
		if !saved {
			continue
		}

		s.hub.Publish(&n, recipient)
	}

	if task == nil || s.backgroundEnqueuer == nil {
		return
	}

	if _, err := s.backgroundEnqueuer.SendTask(task); err != nil {
		logger.WithError(err).WithField("task", task.Name).Error("fail to enqueue push job")
	}
}

// accountsArg wraps a recipient list as a machinery task argument.
func accountsArg(accountNumbers []string) tasks.Arg {
	return tasks.Arg{
		Type:  "[]string",
		Value: accountNumbers,
	}
}

func stringArg(v string) tasks.Arg {
	return tasks.Arg{
		Type:  "string",
		Value: v,
	}
}
