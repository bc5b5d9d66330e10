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
	ErrCallNotFound = fmt.Errorf("call session not found")
	ErrCallResolved = fmt.Errorf("the call session has already been resolved")
)

type CallStore interface {
	InitiateCall(conversationID, caller, callType string) (*schema.CallSession, error)
	GetCallSession(callID string) (*schema.CallSession, error)
	AcceptCall(callID, callee string) (*schema.CallSession, error)
	DeclineCall(callID, account string) (*schema.CallSession, error)
	EndCall(callID, account string) (*schema.CallSession, error)
	SetCallMediaSession(callID, handle string) error
}

// InitiateCall opens a ringing session and records the call request in the
// conversation log.
func (m *mongoDB) InitiateCall(conversationID, caller, callType string) (*schema.CallSession, error) {
	if _, err := m.AppendCallRequestEvent(conversationID, caller); err != nil {
		return nil, err
	}

	session := schema.CallSession{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Caller:         caller,
		Type:           callType,
		State:          schema.CallStateRinging,
		CreatedAt:      time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CallSessionCollection)
	if _, err := c.InsertOne(ctx, session); err != nil {
		return nil, err
	}

	return &session, nil
}

// GetCallSession returns a call session by id
func (m *mongoDB) GetCallSession(callID string) (*schema.CallSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CallSessionCollection)

	var session schema.CallSession
	if err := c.FindOne(ctx, bson.M{"id": callID}).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCallNotFound
		}
		return nil, err
	}

	return &session, nil
}

// AcceptCall answers a ringing session. The conditional ringing->active
// update serializes racing accepts: the second caller gets ErrCallResolved,
// never a second active transition. Duration starts counting here.
func (m *mongoDB) AcceptCall(callID, callee string) (*schema.CallSession, error) {
	session, err := m.GetCallSession(callID)
	if err != nil {
		return nil, err
	}

	if err := m.requireParticipant(session.ConversationID, callee); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CallSessionCollection)

	var updated schema.CallSession
	err = c.FindOneAndUpdate(ctx,
		bson.M{
			"id":    callID,
			"state": schema.CallStateRinging,
		},
		bson.M{"$set": bson.M{
			"state":      schema.CallStateActive,
			"started_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCallResolved
		}
		return nil, err
	}

	return &updated, nil
}

// DeclineCall ends a ringing session without it ever reaching active.
func (m *mongoDB) DeclineCall(callID, account string) (*schema.CallSession, error) {
	session, err := m.GetCallSession(callID)
	if err != nil {
		return nil, err
	}

	if err := m.requireParticipant(session.ConversationID, account); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CallSessionCollection)

	var updated schema.CallSession
	err = c.FindOneAndUpdate(ctx,
		bson.M{
			"id":    callID,
			"state": schema.CallStateRinging,
		},
		bson.M{"$set": bson.M{
			"state":    schema.CallStateEnded,
			"ended_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCallResolved
		}
		return nil, err
	}

	return &updated, nil
}

// endCallRetry bounds the hang-up loop. Call states only move forward
// (ringing, active, ended), so two re-reads already cover every possible
// transition under a racing peer.
const endCallRetry = 4

// EndCall hangs up a session. Ending an already-ended session is a no-op
// returning the archived state; ending a still-ringing session cancels it
// the way DeclineCall does. Duration is measured from the active
// transition only. The conditional update is retried on the fresh state,
// so a peer accepting the ring mid-hang-up cannot make the hang-up a
// silent no-op.
func (m *mongoDB) EndCall(callID, account string) (*schema.CallSession, error) {
	session, err := m.GetCallSession(callID)
	if err != nil {
		return nil, err
	}

	if err := m.requireParticipant(session.ConversationID, account); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CallSessionCollection)

	for i := 0; i < endCallRetry; i++ {
		if session.State == schema.CallStateEnded {
			return session, nil
		}

		now := time.Now().UTC()
		update := bson.M{
			"state":    schema.CallStateEnded,
			"ended_at": now,
		}
		if session.State == schema.CallStateActive {
			update["duration_seconds"] = int64(now.Sub(session.StartedAt).Seconds())
		}

		var updated schema.CallSession
		err = c.FindOneAndUpdate(ctx,
			bson.M{
				"id":    callID,
				"state": session.State,
			},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err == nil {
			return &updated, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}

		// the state moved under us; re-read and end from where it is now
		session, err = m.GetCallSession(callID)
		if err != nil {
			return nil, err
		}
	}

	return nil, ErrCallResolved
}

// SetCallMediaSession stores the opaque handle returned by the external
// signaling provider once the session goes active.
func (m *mongoDB) SetCallMediaSession(callID, handle string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CallSessionCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"id": callID},
		bson.M{"$set": bson.M{"media_session": handle}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrCallNotFound
	}

	return nil
}

func (m *mongoDB) requireParticipant(conversationID, accountNumber string) error {
	conversation, err := m.GetConversation(conversationID)
	if err != nil {
		return err
	}
	if !conversation.HasParticipant(accountNumber) {
		return ErrNotAParticipant
	}
	return nil
}
