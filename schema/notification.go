package schema

import (
	"fmt"
	"time"
)

const NotificationCollection = "notifications"

const (
	NotificationTypeNewApplication      = "new_application"
	NotificationTypeApplicationSelected = "application_selected"
	NotificationTypeMeetingProposed     = "meeting_proposed"
	NotificationTypeMeetingAccepted     = "meeting_accepted"
	NotificationTypeMeetingRejected     = "meeting_rejected"
	NotificationTypeMeetingReminder     = "meeting-reminder"
	NotificationTypeCallIncoming        = "call-incoming"
)

// Notification is one push entry for a single recipient. Key is the stable
// deduplication handle: writes with an already-journaled key are dropped,
// so retried timer ticks or parallel dispatcher instances never double-push.
type Notification struct {
	ID               string    `json:"id" bson:"id"`
	Key              string    `json:"-" bson:"key"`
	Recipient        string    `json:"-" bson:"recipient"`
	Type             string    `json:"type" bson:"type"`
	Title            string    `json:"title" bson:"title"`
	Message          string    `json:"message" bson:"message"`
	Timestamp        time.Time `json:"timestamp" bson:"timestamp"`
	RelatedMeetingID string    `json:"related_meeting_id,omitempty" bson:"related_meeting_id,omitempty"`
	RelatedCallID    string    `json:"related_call_id,omitempty" bson:"related_call_id,omitempty"`
	ConversationID   string    `json:"conversation_id,omitempty" bson:"conversation_id,omitempty"`
	Actionable       bool      `json:"actionable" bson:"actionable"`
}

// ReminderKey is the stable key for the one-shot meeting reminder of a
// recipient.
func ReminderKey(meetingID, recipient string) string {
	return fmt.Sprintf("reminder-%s-%s", meetingID, recipient)
}

// CallDueKey is the stable key for the call-due push of a recipient.
func CallDueKey(meetingID, recipient string) string {
	return fmt.Sprintf("call-due-%s-%s", meetingID, recipient)
}
