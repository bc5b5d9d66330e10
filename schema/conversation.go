package schema

import (
	"time"
)

const (
	ConversationCollection = "conversations"
	EventCollection        = "events"
)

// event types inside a conversation
const (
	EventTypeText        = "text"
	EventTypeCallRequest = "call_request"
	EventTypeMeeting     = "meeting"
)

// Conversation is the message thread bound to a matched request. It is
// created exactly once, when an application is selected, and only grows by
// appended events afterwards. Event ordering is defined by the per-thread
// sequence number, never by wall clock.
type Conversation struct {
	ID        string    `json:"id" bson:"id"`
	RequestID string    `json:"request_id" bson:"request_id"`
	Requester string    `json:"requester" bson:"requester"`
	Helper    string    `json:"helper" bson:"helper"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// HasParticipant reports whether the account is one of the two bound
// identities of the conversation.
func (c *Conversation) HasParticipant(accountNumber string) bool {
	return c.Requester == accountNumber || c.Helper == accountNumber
}

// Peer returns the other participant of the conversation.
func (c *Conversation) Peer(accountNumber string) string {
	if c.Requester == accountNumber {
		return c.Helper
	}
	return c.Requester
}

// Event is one entry of a conversation's append-only log. Exactly one of
// the type-specific payloads is set, switched by Type. Meeting events carry
// the proposal snapshot; the authoritative meeting state lives in the
// meetings collection.
type Event struct {
	ConversationID string    `json:"conversation_id" bson:"conversation_id"`
	Seq            int64     `json:"seq" bson:"seq"`
	Type           string    `json:"type" bson:"type"`
	Sender         string    `json:"sender" bson:"sender"`
	SentAt         time.Time `json:"sent_at" bson:"sent_at"`

	Body    string        `json:"body,omitempty" bson:"body,omitempty"`
	Meeting *MeetingEvent `json:"meeting,omitempty" bson:"meeting,omitempty"`
}

// MeetingEvent is the proposal payload embedded in a meeting event.
type MeetingEvent struct {
	MeetingID   string    `json:"meeting_id" bson:"meeting_id"`
	Title       string    `json:"title" bson:"title"`
	Note        string    `json:"note,omitempty" bson:"note,omitempty"`
	CallType    string    `json:"call_type" bson:"call_type"`
	ScheduledAt time.Time `json:"scheduled_at" bson:"scheduled_at"`
}
