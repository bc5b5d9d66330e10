package schema

import (
	"time"
)

const MeetingCollection = "meetings"

const (
	MeetingStatePending  = "pending"
	MeetingStateAccepted = "accepted"
	MeetingStateRejected = "rejected"
)

// ReminderLead is how long before the scheduled moment the one-shot
// meeting reminder fires.
const ReminderLead = 30 * time.Minute

// Meeting is a scheduled-call proposal exchanged inside a conversation.
// The coordinator is its sole mutator: pending meetings are accepted by the
// non-proposing participant or rejected by either one; accepted meetings
// additionally pick up the time-driven ReminderFired and CallDue marks.
type Meeting struct {
	ID             string    `json:"id" bson:"id"`
	ConversationID string    `json:"conversation_id" bson:"conversation_id"`
	EventSeq       int64     `json:"event_seq" bson:"event_seq"`
	Proposer       string    `json:"proposer" bson:"proposer"`
	Title          string    `json:"title" bson:"title"`
	Note           string    `json:"note,omitempty" bson:"note,omitempty"`
	CallType       string    `json:"call_type" bson:"call_type"`
	ScheduledAt    time.Time `json:"scheduled_at" bson:"scheduled_at"`
	Status         string    `json:"status" bson:"status"`
	ReminderFired  bool      `json:"reminder_fired" bson:"reminder_fired"`
	CallDue        bool      `json:"call_due" bson:"call_due"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	RespondedAt    time.Time `json:"responded_at,omitempty" bson:"responded_at,omitempty"`
}
