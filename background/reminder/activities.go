package reminder

import (
	"context"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/doumi-inc/doumi-api/background"
	"github.com/doumi-inc/doumi-api/external/push"
	"github.com/doumi-inc/doumi-api/schema"
	"github.com/doumi-inc/doumi-api/store"
)

// GetAcceptedMeetingActivity loads a meeting for the workflow. It returns
// nil without error when the meeting is gone or no longer accepted, which
// tells the workflow there is nothing left to schedule.
func (r *ReminderWorker) GetAcceptedMeetingActivity(ctx context.Context, meetingID string) (*schema.Meeting, error) {
	meeting, err := r.mongo.GetMeeting(meetingID)
	if err != nil {
		if err == store.ErrMeetingNotFound {
			return nil, nil
		}
		return nil, err
	}

	if meeting.Status != schema.MeetingStateAccepted {
		return nil, nil
	}

	return meeting, nil
}

// FireMeetingReminderActivity emits the one-shot T-30min reminder to both
// participants. The store claim plus the journaled stable key make the
// emission idempotent across activity retries and worker instances.
func (r *ReminderWorker) FireMeetingReminderActivity(ctx context.Context, meetingID string) error {
	logger := activity.GetLogger(ctx)

	meeting, err := r.mongo.GetMeeting(meetingID)
	if err != nil {
		if err == store.ErrMeetingNotFound {
			return nil
		}
		return err
	}
	if meeting.Status != schema.MeetingStateAccepted {
		logger.Info("meeting no longer accepted; skipping reminder", zap.String("meetingID", meetingID))
		return nil
	}

	fired, err := r.mongo.MarkReminderFired(meetingID)
	if err != nil {
		return err
	}
	if !fired {
		logger.Info("reminder already fired", zap.String("meetingID", meetingID))
		return nil
	}

	conversation, err := r.mongo.GetConversation(meeting.ConversationID)
	if err != nil {
		return err
	}

	headings, contents, err := background.LocalizedMessage("meeting_reminder", map[string]interface{}{
		"Title": meeting.Title,
	})
	if err != nil {
		return err
	}

	for _, account := range []string{conversation.Requester, conversation.Helper} {
		n := schema.Notification{
			Key:              schema.ReminderKey(meetingID, account),
			Recipient:        account,
			Type:             schema.NotificationTypeMeetingReminder,
			Title:            headings["ko"],
			Message:          contents["ko"],
			RelatedMeetingID: meetingID,
			ConversationID:   meeting.ConversationID,
		}
		saved, err := r.mongo.SaveNotification(&n)
		if err != nil {
			return err
		}
		if !saved {
			continue
		}

		if err := r.Background.DispatchNotification(&n); err != nil {
			logger.Warn("fail to relay reminder to the api process", zap.Error(err))
		}

		if err := r.Background.NotifyAccountsByText([]string{account}, headings, contents,
			map[string]interface{}{
				"notification_type": schema.NotificationTypeMeetingReminder,
				"meeting_id":        meetingID,
			},
		); err != nil {
			if !push.IsErrAllPlayersNotSubscribed(err) {
				return err
			}
			logger.Warn("account is not subscribed at the push provider", zap.String("accountNumber", account))
		}
	}

	return nil
}

// MarkCallDueActivity transitions an accepted meeting to call-due at its
// scheduled moment and advises both participants to start the call. It
// never creates a call session itself.
func (r *ReminderWorker) MarkCallDueActivity(ctx context.Context, meetingID string) error {
	logger := activity.GetLogger(ctx)

	meeting, err := r.mongo.GetMeeting(meetingID)
	if err != nil {
		if err == store.ErrMeetingNotFound {
			return nil
		}
		return err
	}
	if meeting.Status != schema.MeetingStateAccepted {
		logger.Info("meeting no longer accepted; skipping call-due", zap.String("meetingID", meetingID))
		return nil
	}

	due, err := r.mongo.MarkCallDue(meetingID)
	if err != nil {
		return err
	}
	if !due {
		logger.Info("call-due already marked", zap.String("meetingID", meetingID))
		return nil
	}

	conversation, err := r.mongo.GetConversation(meeting.ConversationID)
	if err != nil {
		return err
	}

	headings, contents, err := background.LocalizedMessage("call_due", map[string]interface{}{
		"Title": meeting.Title,
	})
	if err != nil {
		return err
	}

	for _, account := range []string{conversation.Requester, conversation.Helper} {
		n := schema.Notification{
			Key:              schema.CallDueKey(meetingID, account),
			Recipient:        account,
			Type:             schema.NotificationTypeCallIncoming,
			Title:            headings["ko"],
			Message:          contents["ko"],
			RelatedMeetingID: meetingID,
			ConversationID:   meeting.ConversationID,
			Actionable:       true,
		}
		saved, err := r.mongo.SaveNotification(&n)
		if err != nil {
			return err
		}
		if !saved {
			continue
		}

		if err := r.Background.DispatchNotification(&n); err != nil {
			logger.Warn("fail to relay call-due alert to the api process", zap.Error(err))
		}

		if err := r.Background.NotifyAccountsByText([]string{account}, headings, contents,
			map[string]interface{}{
				"notification_type": schema.NotificationTypeCallIncoming,
				"meeting_id":        meetingID,
			},
		); err != nil {
			if !push.IsErrAllPlayersNotSubscribed(err) {
				return err
			}
			logger.Warn("account is not subscribed at the push provider", zap.String("accountNumber", account))
		}
	}

	return nil
}
