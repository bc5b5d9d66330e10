package schema

import (
	"time"
)

const RequestCollection = "requests"

// request lifecycle states
const (
	RequestStateWaiting   = "waiting"
	RequestStateMatched   = "matched"
	RequestStateCompleted = "completed"
	RequestStateCancelled = "cancelled"
)

// categories a requester can file a help request under
const (
	CategoryGovernment = "government"
	CategoryInsurance  = "insurance"
	CategoryBanking    = "banking"
	CategoryOther      = "other"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// HelpRequest is a help-task posted by a requester. Its status is mutated
// only by the matching flow; fields are editable by the author while the
// request is still waiting.
type HelpRequest struct {
	ID          string    `json:"id" bson:"id"`
	Requester   string    `json:"requester" bson:"requester"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Tags        []string  `json:"tags" bson:"tags"`
	Urgency     string    `json:"urgency" bson:"urgency"`
	Status      string    `json:"status" bson:"status"`
	Helper      string    `json:"helper,omitempty" bson:"helper,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidCategory reports whether c is one of the supported categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryGovernment, CategoryInsurance, CategoryBanking, CategoryOther:
		return true
	}
	return false
}

// ValidUrgency reports whether u is one of the supported urgency levels.
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}
