package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/doumi-inc/doumi-api/mocks"
	"github.com/doumi-inc/doumi-api/schema"
	"github.com/doumi-inc/doumi-api/store"
)

func TestCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().
		CreateRequest("account-a", "카카오뱅크 앱 설치", "앱 설치를 도와주세요",
			schema.CategoryBanking, []string{"앱설치"}, schema.UrgencyMedium).
		Return(&schema.HelpRequest{
			ID:        "request-1",
			Requester: "account-a",
			Title:     "카카오뱅크 앱 설치",
			Status:    schema.RequestStateWaiting,
		}, nil).Times(1)

	router := gin.New()
	router.Use(fakeAuth("account-a"))
	router.POST("/", s.createRequest)

	// urgency defaults to medium when omitted
	body := `{"title":"카카오뱅크 앱 설치","description":"앱 설치를 도와주세요","category":"banking","tags":["앱설치"]}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.HelpRequest `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "request-1", resp.Result.ID)
	assert.Equal(t, schema.RequestStateWaiting, resp.Result.Status)
}

func TestCreateRequestRejectsBadCategory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	router := gin.New()
	router.Use(fakeAuth("account-a"))
	router.POST("/", s.createRequest)

	body := `{"title":"도움 요청","category":"no-such-category"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestListRequestsMineOnly(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().
		ListRequests(store.RequestFilter{
			Category:  schema.CategoryGovernment,
			Requester: "account-a",
		}).
		Return([]schema.HelpRequest{{ID: "request-1"}}, nil).Times(1)

	router := gin.New()
	router.Use(fakeAuth("account-a"))
	router.GET("/", s.listRequests)

	req := httptest.NewRequest("GET", "/?category=government&mine=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Requests []schema.HelpRequest `json:"requests"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Requests, 1)
}

func TestUpdateRequestComplete(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().
		CompleteRequest("account-a", "request-1").
		Return(nil).Times(1)

	router := gin.New()
	router.Use(fakeAuth("account-a"))
	router.PATCH("/:requestID", s.updateRequest)

	req := httptest.NewRequest("PATCH", "/request-1", strings.NewReader(`{"status":"completed"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateRequestOutOfOrderTransition(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().
		CancelRequest("account-a", "request-1").
		Return(store.ErrInvalidRequestState).Times(1)

	router := gin.New()
	router.Use(fakeAuth("account-a"))
	router.PATCH("/:requestID", s.updateRequest)

	req := httptest.NewRequest("PATCH", "/request-1", strings.NewReader(`{"status":"cancelled"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errorInvalidRequestState.Code, resp.Code)
}
