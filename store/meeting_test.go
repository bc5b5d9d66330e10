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

type MeetingTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore

	conversation *schema.Conversation
}

func NewMeetingTestSuite(connURI, dbName string) *MeetingTestSuite {
	return &MeetingTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MeetingTestSuite) SetupSuite() {
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

// LoadMongoDBFixtures opens the matched conversation the meetings live in
func (s *MeetingTestSuite) LoadMongoDBFixtures() error {
	request, err := s.store.CreateRequest("meeting-requester", "서류 발급 도움",
		"", schema.CategoryGovernment, nil, schema.UrgencyMedium)
	if err != nil {
		return err
	}

	application, err := s.store.ApplyToRequest(request.ID, "meeting-helper", "안녕하세요")
	if err != nil {
		return err
	}

	conversation, err := s.store.SelectApplication("meeting-requester", request.ID, application.ID)
	if err != nil {
		return err
	}

	s.conversation = conversation
	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *MeetingTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *MeetingTestSuite) proposeMeeting(proposer string) *schema.Meeting {
	meeting, err := s.store.ProposeMeeting(s.conversation.ID, proposer,
		"통화 약속", "", schema.CallTypeVoice, time.Now().Add(2*time.Hour))
	s.Require().NoError(err)
	return meeting
}

func (s *MeetingTestSuite) TestProposeMeeting() {
	before, err := s.store.ListEvents(s.conversation.ID, 0, 0)
	s.NoError(err)

	meeting := s.proposeMeeting("meeting-helper")
	s.Equal(schema.MeetingStatePending, meeting.Status)
	s.Equal("meeting-helper", meeting.Proposer)
	s.False(meeting.ReminderFired)
	s.False(meeting.CallDue)

	// the proposal is also an event in the thread
	events, err := s.store.ListEvents(s.conversation.ID, 0, 0)
	s.NoError(err)
	s.Len(events, len(before)+1)

	last := events[len(events)-1]
	s.Equal(schema.EventTypeMeeting, last.Type)
	s.Equal(meeting.ID, last.Meeting.MeetingID)

	_, err = s.store.ProposeMeeting(s.conversation.ID, "stranger",
		"불청객", "", schema.CallTypeVoice, time.Now().Add(time.Hour))
	s.Equal(ErrNotAParticipant, err)
}

func (s *MeetingTestSuite) TestRespondMeeting() {
	meeting := s.proposeMeeting("meeting-helper")

	// the proposer cannot accept their own proposal
	_, err := s.store.RespondMeeting(meeting.ID, "meeting-helper", true)
	s.Equal(ErrProposerCannotAccept, err)

	accepted, err := s.store.RespondMeeting(meeting.ID, "meeting-requester", true)
	s.NoError(err)
	s.Equal(schema.MeetingStateAccepted, accepted.Status)

	// a settled meeting cannot be answered again
	_, err = s.store.RespondMeeting(meeting.ID, "meeting-requester", false)
	s.Equal(ErrMeetingResolved, err)

	// rejection is open to either participant, including the proposer
	second := s.proposeMeeting("meeting-requester")
	rejected, err := s.store.RespondMeeting(second.ID, "meeting-requester", false)
	s.NoError(err)
	s.Equal(schema.MeetingStateRejected, rejected.Status)

	_, err = s.store.RespondMeeting(meeting.ID, "stranger", true)
	s.Equal(ErrNotAParticipant, err)

	_, err = s.store.RespondMeeting("no-such-meeting", "meeting-requester", true)
	s.Equal(ErrMeetingNotFound, err)
}

// TestMarkReminderFiredOnce claims the reminder from several goroutines at
// once; exactly one of them may observe the claim.
func (s *MeetingTestSuite) TestMarkReminderFiredOnce() {
	meeting := s.proposeMeeting("meeting-helper")
	_, err := s.store.RespondMeeting(meeting.ID, "meeting-requester", true)
	s.NoError(err)

	const claimers = 8
	fired := make([]bool, claimers)

	var wg sync.WaitGroup
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := s.store.MarkReminderFired(meeting.ID)
			s.NoError(err)
			fired[i] = ok
		}(i)
	}
	wg.Wait()

	claimed := 0
	for _, ok := range fired {
		if ok {
			claimed++
		}
	}
	s.Equal(1, claimed)

	// call-due is an independent one-shot flag
	due, err := s.store.MarkCallDue(meeting.ID)
	s.NoError(err)
	s.True(due)

	due, err = s.store.MarkCallDue(meeting.ID)
	s.NoError(err)
	s.False(due)
}

func (s *MeetingTestSuite) TestMarkReminderRequiresAccepted() {
	meeting := s.proposeMeeting("meeting-helper")

	// still pending: nothing to remind about
	fired, err := s.store.MarkReminderFired(meeting.ID)
	s.NoError(err)
	s.False(fired)

	_, err = s.store.RespondMeeting(meeting.ID, "meeting-requester", false)
	s.NoError(err)

	fired, err = s.store.MarkReminderFired(meeting.ID)
	s.NoError(err)
	s.False(fired)
}

func (s *MeetingTestSuite) TestListMeetings() {
	meetings, err := s.store.ListMeetings(s.conversation.ID)
	s.NoError(err)

	// proposal order follows the event log
	for i := 1; i < len(meetings); i++ {
		s.Less(meetings[i-1].EventSeq, meetings[i].EventSeq)
	}
}

func TestMeetingTestSuite(t *testing.T) {
	suite.Run(t, NewMeetingTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-meeting"))
}
