package schema

import (
	"time"
)

const CallSessionCollection = "call_sessions"

const (
	CallStateRinging = "ringing"
	CallStateActive  = "active"
	CallStateEnded   = "ended"
)

const (
	CallTypeVoice = "voice"
	CallTypeVideo = "video"
)

// CallSession is the bookkeeping state machine around a voice/video call.
// Media frames never pass through this system; once a session goes active
// the external signaling provider hands back an opaque media-session
// handle. Duration is measured from the active transition, not from
// ringing.
type CallSession struct {
	ID              string    `json:"id" bson:"id"`
	ConversationID  string    `json:"conversation_id" bson:"conversation_id"`
	Caller          string    `json:"caller" bson:"caller"`
	Type            string    `json:"type" bson:"type"`
	State           string    `json:"state" bson:"state"`
	MediaSession    string    `json:"media_session,omitempty" bson:"media_session,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	StartedAt       time.Time `json:"started_at,omitempty" bson:"started_at,omitempty"`
	EndedAt         time.Time `json:"ended_at,omitempty" bson:"ended_at,omitempty"`
	DurationSeconds int64     `json:"duration_seconds" bson:"duration_seconds"`
}

// ValidCallType reports whether t is a supported call type.
func ValidCallType(t string) bool {
	return t == CallTypeVoice || t == CallTypeVideo
}
