package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doumi-inc/doumi-api/schema"
)

// primitiveRegex builds a case-insensitive substring matcher with the
// search term treated literally.
func primitiveRegex(term string) primitive.Regex {
	return primitive.Regex{
		Pattern: regexp.QuoteMeta(term),
		Options: "i",
	}
}

var (
	ErrRequestNotFound     = fmt.Errorf("help request not found")
	ErrInvalidRequestState = fmt.Errorf("the request is not in the required lifecycle state")
	ErrRequestNotOwned     = fmt.Errorf("only the author of the request may do this")
)

// RequestFilter narrows down a request listing. Zero values mean no
// constraint for that field.
type RequestFilter struct {
	Requester string
	Category  string
	Urgency   string
	Freetext  string
	Limit     int64
}

type RequestStore interface {
	CreateRequest(requester, title, description, category string, tags []string, urgency string) (*schema.HelpRequest, error)
	GetRequest(requestID string) (*schema.HelpRequest, error)
	ListRequests(filter RequestFilter) ([]schema.HelpRequest, error)
	EditRequest(requester, requestID, title, description, category string, tags []string, urgency string) (*schema.HelpRequest, error)
	CompleteRequest(requester, requestID string) error
	CancelRequest(requester, requestID string) error
}

// CreateRequest files a new help request in the waiting state.
func (m *mongoDB) CreateRequest(requester, title, description, category string, tags []string, urgency string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	request := schema.HelpRequest{
		ID:          uuid.New().String(),
		Requester:   requester,
		Title:       title,
		Description: description,
		Category:    category,
		Tags:        tags,
		Urgency:     urgency,
		Status:      schema.RequestStateWaiting,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	c := m.client.Database(m.database).Collection(schema.RequestCollection)
	if _, err := c.InsertOne(ctx, request); err != nil {
		return nil, err
	}

	return &request, nil
}

// GetRequest returns a help request by id
func (m *mongoDB) GetRequest(requestID string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.HelpRequest
	if err := c.FindOne(ctx, bson.M{"id": requestID}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// ListRequests returns help requests matching the filter, newest first.
// The freetext filter is a case-insensitive match over title and
// description; mongo text indexes are useless for Korean, so a regex it is.
func (m *mongoDB) ListRequests(filter RequestFilter) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	query := bson.M{}
	if filter.Requester != "" {
		query["requester"] = filter.Requester
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Urgency != "" {
		query["urgency"] = filter.Urgency
	}
	if filter.Freetext != "" {
		pattern := primitiveRegex(filter.Freetext)
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := make([]schema.HelpRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// EditRequest updates the author-editable fields of a request. It is only
// permitted while the request is still waiting.
func (m *mongoDB) EditRequest(requester, requestID, title, description, category string, tags []string, urgency string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	update := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if title != "" {
		update["title"] = title
	}
	if description != "" {
		update["description"] = description
	}
	if category != "" {
		update["category"] = category
	}
	if tags != nil {
		update["tags"] = tags
	}
	if urgency != "" {
		update["urgency"] = urgency
	}

	var request schema.HelpRequest
	err := c.FindOneAndUpdate(ctx,
		bson.M{
			"id":        requestID,
			"requester": requester,
			"status":    schema.RequestStateWaiting,
		},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, m.explainRequestMiss(requester, requestID)
		}
		return nil, err
	}

	return &request, nil
}

// CompleteRequest marks a matched request as done. Only the author may
// complete it.
func (m *mongoDB) CompleteRequest(requester, requestID string) error {
	return m.transitionRequest(requester, requestID, schema.RequestStateMatched, schema.RequestStateCompleted)
}

// CancelRequest withdraws a request that has not been matched yet.
func (m *mongoDB) CancelRequest(requester, requestID string) error {
	return m.transitionRequest(requester, requestID, schema.RequestStateWaiting, schema.RequestStateCancelled)
}

func (m *mongoDB) transitionRequest(requester, requestID, from, to string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{
			"id":        requestID,
			"requester": requester,
			"status":    from,
		},
		bson.M{"$set": bson.M{
			"status":     to,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return m.explainRequestMiss(requester, requestID)
	}

	return nil
}

// explainRequestMiss turns a failed conditional update into the precise
// domain error: unknown id, foreign author, or wrong lifecycle state.
func (m *mongoDB) explainRequestMiss(requester, requestID string) error {
	request, err := m.GetRequest(requestID)
	if err != nil {
		return err
	}
	if request.Requester != requester {
		return ErrRequestNotOwned
	}
	return ErrInvalidRequestState
}
