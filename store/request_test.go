package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doumi-inc/doumi-api/schema"
)

type RequestTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewRequestTestSuite(connURI, dbName string) *RequestTestSuite {
	return &RequestTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *RequestTestSuite) SetupSuite() {
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
}

// CleanMongoDB drop the whole test mongodb
func (s *RequestTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *RequestTestSuite) TestCreateAndGetRequest() {
	request, err := s.store.CreateRequest("request-author", "주민등록등본 발급",
		"정부24에서 등본 발급을 도와주세요", schema.CategoryGovernment,
		[]string{"정부24", "등본"}, schema.UrgencyHigh)
	s.NoError(err)
	s.NotEmpty(request.ID)
	s.Equal(schema.RequestStateWaiting, request.Status)

	stored, err := s.store.GetRequest(request.ID)
	s.NoError(err)
	s.Equal(request.Title, stored.Title)
	s.Equal([]string{"정부24", "등본"}, stored.Tags)

	_, err = s.store.GetRequest("no-such-request")
	s.Equal(ErrRequestNotFound, err)
}

func (s *RequestTestSuite) TestListRequests() {
	_, err := s.store.CreateRequest("list-author", "실비보험 청구",
		"보험금 청구 서류", schema.CategoryInsurance, nil, schema.UrgencyLow)
	s.NoError(err)
	_, err = s.store.CreateRequest("list-author", "적금 가입",
		"은행 적금 상품 가입", schema.CategoryBanking, nil, schema.UrgencyMedium)
	s.NoError(err)
	_, err = s.store.CreateRequest("other-author", "보험 상담",
		"자동차 보험 갱신", schema.CategoryInsurance, nil, schema.UrgencyMedium)
	s.NoError(err)

	insurance, err := s.store.ListRequests(RequestFilter{Category: schema.CategoryInsurance})
	s.NoError(err)
	s.Len(insurance, 2)

	mine, err := s.store.ListRequests(RequestFilter{Requester: "list-author"})
	s.NoError(err)
	s.Len(mine, 2)

	// case-insensitive substring match over title and description
	found, err := s.store.ListRequests(RequestFilter{Freetext: "보험"})
	s.NoError(err)
	s.Len(found, 2)

	found, err = s.store.ListRequests(RequestFilter{Freetext: "적금"})
	s.NoError(err)
	s.Len(found, 1)
}

func (s *RequestTestSuite) TestEditRequest() {
	request, err := s.store.CreateRequest("edit-author", "원래 제목",
		"원래 설명", schema.CategoryOther, nil, schema.UrgencyLow)
	s.NoError(err)

	edited, err := s.store.EditRequest("edit-author", request.ID,
		"바뀐 제목", "", "", nil, schema.UrgencyHigh)
	s.NoError(err)
	s.Equal("바뀐 제목", edited.Title)
	// untouched fields survive a partial edit
	s.Equal("원래 설명", edited.Description)
	s.Equal(schema.UrgencyHigh, edited.Urgency)

	// only the author may edit
	_, err = s.store.EditRequest("somebody-else", request.ID, "탈취", "", "", nil, "")
	s.Equal(ErrRequestNotOwned, err)
}

func (s *RequestTestSuite) TestLifecycleTransitions() {
	request, err := s.store.CreateRequest("cycle-author", "도움 요청",
		"", schema.CategoryOther, nil, schema.UrgencyLow)
	s.NoError(err)

	// completing a waiting request is out of order
	s.Equal(ErrInvalidRequestState, s.store.CompleteRequest("cycle-author", request.ID))

	s.NoError(s.store.CancelRequest("cycle-author", request.ID))

	cancelled, err := s.store.GetRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestStateCancelled, cancelled.Status)

	// a cancelled request is frozen
	s.Equal(ErrInvalidRequestState, s.store.CancelRequest("cycle-author", request.ID))
	_, err = s.store.EditRequest("cycle-author", request.ID, "수정", "", "", nil, "")
	s.Equal(ErrInvalidRequestState, err)

	// a matched request completes but cannot be cancelled
	matched, err := s.store.CreateRequest("cycle-author", "다른 요청",
		"", schema.CategoryOther, nil, schema.UrgencyLow)
	s.NoError(err)

	application, err := s.store.ApplyToRequest(matched.ID, "cycle-helper", "")
	s.NoError(err)
	_, err = s.store.SelectApplication("cycle-author", matched.ID, application.ID)
	s.NoError(err)

	s.Equal(ErrInvalidRequestState, s.store.CancelRequest("cycle-author", matched.ID))
	s.NoError(s.store.CompleteRequest("cycle-author", matched.ID))
}

func TestRequestTestSuite(t *testing.T) {
	suite.Run(t, NewRequestTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-request"))
}
