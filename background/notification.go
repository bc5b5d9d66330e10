package background

import (
	log "github.com/sirupsen/logrus"

	"github.com/doumi-inc/doumi-api/external/push"
	"github.com/doumi-inc/doumi-api/schema"
)

// notifyByType localizes and pushes one notification type to a set of
// accounts, swallowing the benign no-registered-device provider error.
func (m *BackgroundManager) notifyByType(accountNumbers []string, msgType string, templateData, data map[string]interface{}) error {
	if len(accountNumbers) == 0 {
		return nil
	}

	headings, contents, err := LocalizedMessage(msgType, templateData)
	if err != nil {
		return err
	}

	if err := m.NotifyAccountsByText(accountNumbers, headings, contents, data); err != nil {
		if !push.IsErrAllPlayersNotSubscribed(err) {
			return err
		}
		log.WithField("prefix", "background").
			Warn("no subscribed device for notified accounts")
	}

	return nil
}

// NotifyNewApplication is a background job to tell a requester that a new
// helper applied to their request
func (m *BackgroundManager) NotifyNewApplication(requestID string, accountNumbers []string) error {
	return m.notifyByType(accountNumbers, "new_application", nil, map[string]interface{}{
		"notification_type": schema.NotificationTypeNewApplication,
		"request_id":        requestID,
	})
}

// NotifyApplicationSelected is a background job to tell a helper they were
// matched and the conversation is open
func (m *BackgroundManager) NotifyApplicationSelected(conversationID string, accountNumbers []string) error {
	return m.notifyByType(accountNumbers, "application_selected", nil, map[string]interface{}{
		"notification_type": schema.NotificationTypeApplicationSelected,
		"conversation_id":   conversationID,
	})
}

// NotifyMeetingProposed is a background job to tell the peer about a new
// meeting proposal
func (m *BackgroundManager) NotifyMeetingProposed(meetingID string, accountNumbers []string) error {
	return m.notifyByType(accountNumbers, "meeting_proposed", nil, map[string]interface{}{
		"notification_type": schema.NotificationTypeMeetingProposed,
		"meeting_id":        meetingID,
	})
}

// NotifyMeetingResponded is a background job to tell the proposer how the
// peer answered their meeting proposal
func (m *BackgroundManager) NotifyMeetingResponded(meetingID, status string, accountNumbers []string) error {
	msgType := "meeting_rejected"
	notificationType := schema.NotificationTypeMeetingRejected
	if status == schema.MeetingStateAccepted {
		msgType = "meeting_accepted"
		notificationType = schema.NotificationTypeMeetingAccepted
	}

	return m.notifyByType(accountNumbers, msgType, nil, map[string]interface{}{
		"notification_type": notificationType,
		"meeting_id":        meetingID,
	})
}

// NotifyIncomingCall is a background job to ring the callee's devices
func (m *BackgroundManager) NotifyIncomingCall(callID, callerName string, accountNumbers []string) error {
	return m.notifyByType(accountNumbers, "call_incoming",
		map[string]interface{}{
			"Caller": callerName,
		},
		map[string]interface{}{
			"notification_type": schema.NotificationTypeCallIncoming,
			"call_id":           callID,
		})
}
