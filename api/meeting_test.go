package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/doumi-inc/doumi-api/dispatcher"
	"github.com/doumi-inc/doumi-api/mocks"
	"github.com/doumi-inc/doumi-api/schema"
	"github.com/doumi-inc/doumi-api/store"
)

func TestProposeMeeting(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		hub:        dispatcher.NewHub(),
	}

	scheduledAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	m.EXPECT().
		ProposeMeeting("conversation-1", "author-a", "내일 통화", "서류 준비해 주세요",
			schema.CallTypeVoice, gomock.Any()).
		Return(&schema.Meeting{
			ID:             "meeting-1",
			ConversationID: "conversation-1",
			Proposer:       "author-a",
			Title:          "내일 통화",
			CallType:       schema.CallTypeVoice,
			ScheduledAt:    scheduledAt,
			Status:         schema.MeetingStatePending,
		}, nil).Times(1)

	m.EXPECT().
		GetConversation("conversation-1").
		Return(&schema.Conversation{
			ID:        "conversation-1",
			Requester: "author-a",
			Helper:    "helper-a",
		}, nil).Times(1)

	m.EXPECT().SaveNotification(gomock.Any()).Return(true, nil).Times(1)

	router := gin.New()
	router.Use(fakeAuth("author-a"))
	router.POST("/:conversationID/meetings", s.proposeMeeting)

	// call_type defaults to voice when omitted
	body := fmt.Sprintf(`{"title":"내일 통화","note":"서류 준비해 주세요","scheduled_at":%q}`,
		scheduledAt.Format(time.RFC3339))
	req := httptest.NewRequest("POST", "/conversation-1/meetings", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	s.notifier.Wait()

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.Meeting `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "meeting-1", resp.Result.ID)
	assert.Equal(t, schema.MeetingStatePending, resp.Result.Status)
}

func TestProposeMeetingRejectsPastSchedule(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	router := gin.New()
	router.Use(fakeAuth("author-a"))
	router.POST("/:conversationID/meetings", s.proposeMeeting)

	body := fmt.Sprintf(`{"title":"늦은 약속","scheduled_at":%q}`,
		time.Now().Add(-time.Hour).Format(time.RFC3339))
	req := httptest.NewRequest("POST", "/conversation-1/meetings", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestRespondMeetingReject(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		hub:        dispatcher.NewHub(),
	}

	m.EXPECT().
		RespondMeeting("meeting-1", "helper-a", false).
		Return(&schema.Meeting{
			ID:             "meeting-1",
			ConversationID: "conversation-1",
			Proposer:       "author-a",
			Status:         schema.MeetingStateRejected,
		}, nil).Times(1)

	m.EXPECT().SaveNotification(gomock.Any()).Return(true, nil).Times(1)

	router := gin.New()
	router.Use(fakeAuth("helper-a"))
	router.PATCH("/:meetingID", s.respondMeeting)

	req := httptest.NewRequest("PATCH", "/meeting-1", strings.NewReader(`{"status":"rejected"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	s.notifier.Wait()

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.Meeting `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schema.MeetingStateRejected, resp.Result.Status)
}

func TestRespondMeetingProposerCannotAccept(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().
		RespondMeeting("meeting-1", "author-a", true).
		Return(nil, store.ErrProposerCannotAccept).Times(1)

	router := gin.New()
	router.Use(fakeAuth("author-a"))
	router.PATCH("/:meetingID", s.respondMeeting)

	req := httptest.NewRequest("PATCH", "/meeting-1", strings.NewReader(`{"status":"accepted"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errorProposerCannotAccept.Code, resp.Code)
}

func TestRespondMeetingBadStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	router := gin.New()
	router.Use(fakeAuth("helper-a"))
	router.PATCH("/:meetingID", s.respondMeeting)

	req := httptest.NewRequest("PATCH", "/meeting-1", strings.NewReader(`{"status":"maybe"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
