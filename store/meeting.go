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
	ErrMeetingNotFound      = fmt.Errorf("meeting not found")
	ErrMeetingResolved      = fmt.Errorf("the meeting has already been responded to")
	ErrProposerCannotAccept = fmt.Errorf("the proposer cannot accept their own meeting")
)

type MeetingStore interface {
	ProposeMeeting(conversationID, proposer, title, note, callType string, scheduledAt time.Time) (*schema.Meeting, error)
	GetMeeting(meetingID string) (*schema.Meeting, error)
	ListMeetings(conversationID string) ([]schema.Meeting, error)
	RespondMeeting(meetingID, responder string, accept bool) (*schema.Meeting, error)
	MarkReminderFired(meetingID string) (bool, error)
	MarkCallDue(meetingID string) (bool, error)
}

// ProposeMeeting appends a proposal event to the conversation and opens the
// pending meeting it describes.
func (m *mongoDB) ProposeMeeting(conversationID, proposer, title, note, callType string, scheduledAt time.Time) (*schema.Meeting, error) {
	meetingID := uuid.New().String()

	event, err := m.AppendMeetingEvent(conversationID, proposer, schema.MeetingEvent{
		MeetingID:   meetingID,
		Title:       title,
		Note:        note,
		CallType:    callType,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		return nil, err
	}

	meeting := schema.Meeting{
		ID:             meetingID,
		ConversationID: conversationID,
		EventSeq:       event.Seq,
		Proposer:       proposer,
		Title:          title,
		Note:           note,
		CallType:       callType,
		ScheduledAt:    scheduledAt.UTC(),
		Status:         schema.MeetingStatePending,
		CreatedAt:      time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MeetingCollection)
	if _, err := c.InsertOne(ctx, meeting); err != nil {
		return nil, err
	}

	return &meeting, nil
}

// GetMeeting returns a meeting by id
func (m *mongoDB) GetMeeting(meetingID string) (*schema.Meeting, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MeetingCollection)

	var meeting schema.Meeting
	if err := c.FindOne(ctx, bson.M{"id": meetingID}).Decode(&meeting); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}

	return &meeting, nil
}

// ListMeetings returns the meetings proposed inside a conversation, in
// proposal order.
func (m *mongoDB) ListMeetings(conversationID string) ([]schema.Meeting, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MeetingCollection)

	cursor, err := c.Find(ctx,
		bson.M{"conversation_id": conversationID},
		options.Find().SetSort(bson.M{"event_seq": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meetings := make([]schema.Meeting, 0)
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}

	return meetings, nil
}

// RespondMeeting settles a pending meeting. Accepting is reserved for the
// non-proposing participant; either participant may reject. A meeting that
// is no longer pending yields ErrMeetingResolved.
func (m *mongoDB) RespondMeeting(meetingID, responder string, accept bool) (*schema.Meeting, error) {
	meeting, err := m.GetMeeting(meetingID)
	if err != nil {
		return nil, err
	}

	conversation, err := m.GetConversation(meeting.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(responder) {
		return nil, ErrNotAParticipant
	}

	status := schema.MeetingStateRejected
	if accept {
		if meeting.Proposer == responder {
			return nil, ErrProposerCannotAccept
		}
		status = schema.MeetingStateAccepted
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MeetingCollection)

	var updated schema.Meeting
	err = c.FindOneAndUpdate(ctx,
		bson.M{
			"id":     meetingID,
			"status": schema.MeetingStatePending,
		},
		bson.M{"$set": bson.M{
			"status":       status,
			"responded_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMeetingResolved
		}
		return nil, err
	}

	return &updated, nil
}

// MarkReminderFired claims the one-shot reminder of an accepted meeting.
// Exactly one caller observes true; overlapping scan ticks, retried
// activities, and parallel workers all see false afterwards.
func (m *mongoDB) MarkReminderFired(meetingID string) (bool, error) {
	return m.claimMeetingFlag(meetingID, "reminder_fired")
}

// MarkCallDue claims the call-due transition of an accepted meeting at its
// scheduled moment. Same at-most-once contract as MarkReminderFired.
func (m *mongoDB) MarkCallDue(meetingID string) (bool, error) {
	return m.claimMeetingFlag(meetingID, "call_due")
}

func (m *mongoDB) claimMeetingFlag(meetingID, flag string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MeetingCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{
			"id":     meetingID,
			"status": schema.MeetingStateAccepted,
			flag:     false,
		},
		bson.M{"$set": bson.M{flag: true}},
	)
	if err != nil {
		return false, err
	}

	return result.MatchedCount == 1, nil
}
