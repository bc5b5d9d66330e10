package schema

import (
	"time"
)

const ApplicationCollection = "applications"

const (
	ApplicationStatePending  = "pending"
	ApplicationStateSelected = "selected"
	ApplicationStateRejected = "rejected"
)

// Application is a helper's offer to fulfill a help request. At most one
// application per request ever reaches the selected state; the rest are
// rejected in the same selection pass.
type Application struct {
	ID          string    `json:"id" bson:"id"`
	RequestID   string    `json:"request_id" bson:"request_id"`
	Helper      string    `json:"helper" bson:"helper"`
	Intro       string    `json:"intro,omitempty" bson:"intro,omitempty"`
	Status      string    `json:"status" bson:"status"`
	SubmittedAt time.Time `json:"submitted_at" bson:"submitted_at"`
	ResolvedAt  time.Time `json:"resolved_at,omitempty" bson:"resolved_at,omitempty"`
}
