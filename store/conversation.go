package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doumi-inc/doumi-api/schema"
)

var (
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrNotAParticipant      = fmt.Errorf("the sender is not a participant of this conversation")
)

// appendRetry bounds the optimistic sequence-allocation loop. Each retry
// means another writer claimed the same sequence number first.
const appendRetry = 16

type ConversationStore interface {
	GetConversation(conversationID string) (*schema.Conversation, error)
	GetConversationByRequest(requestID string) (*schema.Conversation, error)
	ListConversations(accountNumber string) ([]schema.Conversation, error)
	AppendTextMessage(conversationID, sender, body string) (*schema.Event, error)
	AppendCallRequestEvent(conversationID, sender string) (*schema.Event, error)
	AppendMeetingEvent(conversationID, proposer string, meeting schema.MeetingEvent) (*schema.Event, error)
	ListEvents(conversationID string, sinceSeq, limit int64) ([]schema.Event, error)
}

// GetConversation returns a conversation by id
func (m *mongoDB) GetConversation(conversationID string) (*schema.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ConversationCollection)

	var conversation schema.Conversation
	if err := c.FindOne(ctx, bson.M{"id": conversationID}).Decode(&conversation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}

	return &conversation, nil
}

// GetConversationByRequest returns the conversation bound to a matched
// request.
func (m *mongoDB) GetConversationByRequest(requestID string) (*schema.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ConversationCollection)

	var conversation schema.Conversation
	if err := c.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&conversation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}

	return &conversation, nil
}

// ListConversations returns every conversation an account takes part in,
// newest first.
func (m *mongoDB) ListConversations(accountNumber string) ([]schema.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ConversationCollection)

	cursor, err := c.Find(ctx,
		bson.M{"$or": bson.A{
			bson.M{"requester": accountNumber},
			bson.M{"helper": accountNumber},
		}},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	conversations := make([]schema.Conversation, 0)
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}

	return conversations, nil
}

// AppendTextMessage appends a chat message sent by one of the two bound
// participants.
func (m *mongoDB) AppendTextMessage(conversationID, sender, body string) (*schema.Event, error) {
	return m.appendEvent(conversationID, sender, schema.Event{
		Type: schema.EventTypeText,
		Body: body,
	})
}

// AppendCallRequestEvent records that a participant asked for a call right
// now.
func (m *mongoDB) AppendCallRequestEvent(conversationID, sender string) (*schema.Event, error) {
	return m.appendEvent(conversationID, sender, schema.Event{
		Type: schema.EventTypeCallRequest,
	})
}

// AppendMeetingEvent records a meeting proposal inside the conversation.
func (m *mongoDB) AppendMeetingEvent(conversationID, proposer string, meeting schema.MeetingEvent) (*schema.Event, error) {
	event := schema.Event{
		Type:    schema.EventTypeMeeting,
		Meeting: &meeting,
	}
	return m.appendEvent(conversationID, proposer, event)
}

// appendEvent allocates the next sequence number and writes the event. The
// insert against the unique (conversation_id, seq) index is the single
// atomic step: concurrent writers that picked the same number collide there
// and retry, so the log stays strictly increasing and gapless no matter
// where a writer dies.
func (m *mongoDB) appendEvent(conversationID, sender string, event schema.Event) (*schema.Event, error) {
	conversation, err := m.GetConversation(conversationID)
	if err != nil {
		return nil, err
	}

	if !conversation.HasParticipant(sender) {
		return nil, ErrNotAParticipant
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.EventCollection)

	event.ConversationID = conversationID
	event.Sender = sender

	for i := 0; i < appendRetry; i++ {
		lastSeq, err := m.lastEventSeq(ctx, conversationID)
		if err != nil {
			return nil, err
		}

		event.Seq = lastSeq + 1
		event.SentAt = time.Now().UTC()

		if _, err := c.InsertOne(ctx, event); err != nil {
			if isDuplicateKeyError(err) {
				continue
			}
			return nil, err
		}

		return &event, nil
	}

	return nil, fmt.Errorf("append contention on conversation %s", conversationID)
}

func (m *mongoDB) lastEventSeq(ctx context.Context, conversationID string) (int64, error) {
	c := m.client.Database(m.database).Collection(schema.EventCollection)

	var last schema.Event
	err := c.FindOne(ctx,
		bson.M{"conversation_id": conversationID},
		options.FindOne().SetSort(bson.M{"seq": -1}),
	).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}

	return last.Seq, nil
}

// ListEvents replays the conversation log from a sequence number. Clients
// resume after reconnect with the last seq they saw; resumption is never by
// wall-clock timestamp.
func (m *mongoDB) ListEvents(conversationID string, sinceSeq, limit int64) ([]schema.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.EventCollection)

	if limit <= 0 || limit > 500 {
		limit = 500
	}

	cursor, err := c.Find(ctx,
		bson.M{
			"conversation_id": conversationID,
			"seq":             bson.M{"$gt": sinceSeq},
		},
		options.Find().SetSort(bson.M{"seq": 1}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]schema.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}
