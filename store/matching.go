package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doumi-inc/doumi-api/schema"
)

var (
	ErrDuplicateApplication = fmt.Errorf("the helper has already applied to this request")
	ErrSelfApplication      = fmt.Errorf("applying to your own request is not allowed")
	ErrApplicationNotFound  = fmt.Errorf("application not found")
	ErrApplicationMismatch  = fmt.Errorf("the application does not belong to this request")
	ErrAlreadyMatched       = fmt.Errorf("the request has already been matched")
)

type MatchingEngine interface {
	ApplyToRequest(requestID, helper, intro string) (*schema.Application, error)
	GetApplication(applicationID string) (*schema.Application, error)
	ListApplications(requestID string) ([]schema.Application, error)
	SelectApplication(requester, requestID, applicationID string) (*schema.Conversation, error)
}

// ApplyToRequest submits a helper's offer against a waiting request. The
// unique (request_id, helper) index turns a second offer from the same
// helper into ErrDuplicateApplication regardless of which instance served
// it.
func (m *mongoDB) ApplyToRequest(requestID, helper, intro string) (*schema.Application, error) {
	request, err := m.GetRequest(requestID)
	if err != nil {
		return nil, err
	}

	if request.Requester == helper {
		return nil, ErrSelfApplication
	}

	if request.Status != schema.RequestStateWaiting {
		return nil, ErrInvalidRequestState
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	application := schema.Application{
		ID:          uuid.New().String(),
		RequestID:   requestID,
		Helper:      helper,
		Intro:       intro,
		Status:      schema.ApplicationStatePending,
		SubmittedAt: time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.ApplicationCollection)
	if _, err := c.InsertOne(ctx, application); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}

	return &application, nil
}

// GetApplication returns an application by id
func (m *mongoDB) GetApplication(applicationID string) (*schema.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ApplicationCollection)

	var application schema.Application
	if err := c.FindOne(ctx, bson.M{"id": applicationID}).Decode(&application); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	return &application, nil
}

// ListApplications returns all applications of a request, oldest first.
func (m *mongoDB) ListApplications(requestID string) ([]schema.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ApplicationCollection)

	cursor, err := c.Find(ctx,
		bson.M{"request_id": requestID},
		options.Find().SetSort(bson.M{"submitted_at": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	applications := make([]schema.Application, 0)
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}

	return applications, nil
}

// SelectApplication resolves exactly one application of a request to
// selected. The commit point is the conditional waiting->matched update on
// the request document: whoever loses that race gets ErrAlreadyMatched and
// no second conversation can ever exist. Sibling applications are rejected
// and the conversation is created after the commit; both follow-ups are
// idempotent, so a crashed selection is healed by the winner retrying.
func (m *mongoDB) SelectApplication(requester, requestID, applicationID string) (*schema.Conversation, error) {
	mu := m.lockRequest(requestID)
	mu.Lock()
	defer mu.Unlock()

	application, err := m.GetApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if application.RequestID != requestID {
		return nil, ErrApplicationMismatch
	}

	request, err := m.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.Requester != requester {
		return nil, ErrRequestNotOwned
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	requests := m.client.Database(m.database).Collection(schema.RequestCollection)
	result, err := requests.UpdateOne(ctx,
		bson.M{
			"id":     requestID,
			"status": schema.RequestStateWaiting,
		},
		bson.M{"$set": bson.M{
			"status":     schema.RequestStateMatched,
			"helper":     application.Helper,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		fresh, err := m.GetRequest(requestID)
		if err != nil {
			return nil, err
		}

		// a retry by the winner of an interrupted selection falls
		// through to finish the remaining effects
		if fresh.Status != schema.RequestStateMatched || fresh.Helper != application.Helper {
			if fresh.Status == schema.RequestStateMatched {
				return nil, ErrAlreadyMatched
			}
			return nil, ErrInvalidRequestState
		}
	}

	now := time.Now().UTC()
	applications := m.client.Database(m.database).Collection(schema.ApplicationCollection)

	if _, err := applications.UpdateOne(ctx,
		bson.M{"id": applicationID},
		bson.M{"$set": bson.M{
			"status":      schema.ApplicationStateSelected,
			"resolved_at": now,
		}},
	); err != nil {
		return nil, err
	}

	if _, err := applications.UpdateMany(ctx,
		bson.M{
			"request_id": requestID,
			"id":         bson.M{"$ne": applicationID},
			"status":     schema.ApplicationStatePending,
		},
		bson.M{"$set": bson.M{
			"status":      schema.ApplicationStateRejected,
			"resolved_at": now,
		}},
	); err != nil {
		return nil, err
	}

	return m.ensureConversation(request.Requester, application.Helper, requestID)
}

// ensureConversation creates the one conversation of a matched request, or
// returns the existing one. The unique request_id index keeps this safe to
// retry.
func (m *mongoDB) ensureConversation(requester, helper, requestID string) (*schema.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ConversationCollection)

	conversation := schema.Conversation{
		ID:        uuid.New().String(),
		RequestID: requestID,
		Requester: requester,
		Helper:    helper,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := c.InsertOne(ctx, conversation); err != nil {
		if !isDuplicateKeyError(err) {
			return nil, err
		}
		return m.GetConversationByRequest(requestID)
	}

	return &conversation, nil
}

// isDuplicateKeyError reports whether a write failed on a unique index.
func isDuplicateKeyError(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 || e.Code == 11001 {
				return true
			}
		}
	}
	if ce, ok := err.(mongo.CommandError); ok {
		return ce.Code == 11000 || ce.Code == 11001
	}
	return false
}
