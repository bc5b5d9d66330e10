package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doumi-inc/doumi-api/schema"
)

type CallTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore

	conversation *schema.Conversation
}

func NewCallTestSuite(connURI, dbName string) *CallTestSuite {
	return &CallTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *CallTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()

	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures opens the matched conversation the calls live in
func (s *CallTestSuite) LoadMongoDBFixtures() error {
	request, err := s.store.CreateRequest("call-requester", "전화 도움",
		"", schema.CategoryOther, nil, schema.UrgencyHigh)
	if err != nil {
		return err
	}

	application, err := s.store.ApplyToRequest(request.ID, "call-helper", "안녕하세요")
	if err != nil {
		return err
	}

	conversation, err := s.store.SelectApplication("call-requester", request.ID, application.ID)
	if err != nil {
		return err
	}

	s.conversation = conversation
	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *CallTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *CallTestSuite) TestInitiateCall() {
	before, err := s.store.ListEvents(s.conversation.ID, 0, 0)
	s.NoError(err)

	session, err := s.store.InitiateCall(s.conversation.ID, "call-helper", schema.CallTypeVoice)
	s.NoError(err)
	s.Equal(schema.CallStateRinging, session.State)
	s.Equal("call-helper", session.Caller)
	s.Zero(session.DurationSeconds)

	// the ring leaves a call_request event in the thread
	events, err := s.store.ListEvents(s.conversation.ID, 0, 0)
	s.NoError(err)
	s.Len(events, len(before)+1)
	s.Equal(schema.EventTypeCallRequest, events[len(events)-1].Type)

	_, err = s.store.InitiateCall(s.conversation.ID, "stranger", schema.CallTypeVoice)
	s.Equal(ErrNotAParticipant, err)
}

// TestAcceptCallConcurrent answers the same ring twice in parallel: one
// active transition, one conflict.
func (s *CallTestSuite) TestAcceptCallConcurrent() {
	session, err := s.store.InitiateCall(s.conversation.ID, "call-helper", schema.CallTypeVideo)
	s.NoError(err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.store.AcceptCall(session.ID, "call-requester")
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			s.Equal(ErrCallResolved, err)
		}
	}
	s.Equal(1, accepted)

	active, err := s.store.GetCallSession(session.ID)
	s.NoError(err)
	s.Equal(schema.CallStateActive, active.State)
	s.False(active.StartedAt.IsZero())
}

func (s *CallTestSuite) TestDeclineCall() {
	session, err := s.store.InitiateCall(s.conversation.ID, "call-requester", schema.CallTypeVoice)
	s.NoError(err)

	declined, err := s.store.DeclineCall(session.ID, "call-helper")
	s.NoError(err)
	s.Equal(schema.CallStateEnded, declined.State)
	// never went active, so no duration
	s.True(declined.StartedAt.IsZero())
	s.Zero(declined.DurationSeconds)

	// answering a declined ring is a conflict
	_, err = s.store.AcceptCall(session.ID, "call-helper")
	s.Equal(ErrCallResolved, err)
}

func (s *CallTestSuite) TestEndCallIdempotent() {
	session, err := s.store.InitiateCall(s.conversation.ID, "call-helper", schema.CallTypeVoice)
	s.NoError(err)

	active, err := s.store.AcceptCall(session.ID, "call-requester")
	s.NoError(err)
	s.Equal(schema.CallStateActive, active.State)

	time.Sleep(1100 * time.Millisecond)

	ended, err := s.store.EndCall(session.ID, "call-helper")
	s.NoError(err)
	s.Equal(schema.CallStateEnded, ended.State)
	s.GreaterOrEqual(ended.DurationSeconds, int64(1))

	// hanging up again returns the archived session unchanged
	again, err := s.store.EndCall(session.ID, "call-requester")
	s.NoError(err)
	s.Equal(schema.CallStateEnded, again.State)
	s.Equal(ended.DurationSeconds, again.DurationSeconds)
	s.Equal(ended.EndedAt.Unix(), again.EndedAt.Unix())
}

func (s *CallTestSuite) TestEndRingingCall() {
	session, err := s.store.InitiateCall(s.conversation.ID, "call-helper", schema.CallTypeVoice)
	s.NoError(err)

	// the caller giving up cancels the ring without a duration
	ended, err := s.store.EndCall(session.ID, "call-helper")
	s.NoError(err)
	s.Equal(schema.CallStateEnded, ended.State)
	s.Zero(ended.DurationSeconds)
}

// TestEndCallDuringAccept races a hang-up against the peer's accept. No
// matter which commits first, the hang-up settles the session; it must
// never report success while the session stays active.
func (s *CallTestSuite) TestEndCallDuringAccept() {
	session, err := s.store.InitiateCall(s.conversation.ID, "call-helper", schema.CallTypeVoice)
	s.NoError(err)

	var wg sync.WaitGroup
	var ended *schema.CallSession
	var endErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		// may lose against the hang-up; either outcome is fine here
		s.store.AcceptCall(session.ID, "call-requester")
	}()
	go func() {
		defer wg.Done()
		ended, endErr = s.store.EndCall(session.ID, "call-helper")
	}()
	wg.Wait()

	s.NoError(endErr)
	s.Equal(schema.CallStateEnded, ended.State)

	final, err := s.store.GetCallSession(session.ID)
	s.NoError(err)
	s.Equal(schema.CallStateEnded, final.State)
}

func (s *CallTestSuite) TestSetCallMediaSession() {
	session, err := s.store.InitiateCall(s.conversation.ID, "call-helper", schema.CallTypeVoice)
	s.NoError(err)

	_, err = s.store.AcceptCall(session.ID, "call-requester")
	s.NoError(err)

	s.NoError(s.store.SetCallMediaSession(session.ID, "media-handle-123"))

	stored, err := s.store.GetCallSession(session.ID)
	s.NoError(err)
	s.Equal("media-handle-123", stored.MediaSession)

	s.Equal(ErrCallNotFound, s.store.SetCallMediaSession("no-such-call", "handle"))
}

func TestCallTestSuite(t *testing.T) {
	suite.Run(t, NewCallTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-call"))
}
