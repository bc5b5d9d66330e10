package api

import (
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/doumi-inc/doumi-api/schema"
	"github.com/doumi-inc/doumi-api/utils"
)

// proposeMeeting is the API to propose a scheduled call inside a
// conversation
func (s *Server) proposeMeeting(c *gin.Context) {
	accountNumber := c.GetString("requester")
	conversationID := c.Param("conversationID")

	var params struct {
		Title       string    `json:"title"`
		Note        string    `json:"note"`
		CallType    string    `json:"call_type"`
		ScheduledAt time.Time `json:"scheduled_at"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.CallType == "" {
		params.CallType = schema.CallTypeVoice
	}

	if params.Title == "" ||
		!schema.ValidCallType(params.CallType) ||
		!params.ScheduledAt.After(time.Now()) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	meeting, err := s.mongoStore.ProposeMeeting(conversationID, accountNumber,
		params.Title, params.Note, params.CallType, params.ScheduledAt)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	conversation, err := s.mongoStore.GetConversation(conversationID)
	if shouldInterupt(err, c) {
		return
	}
	peer := conversation.Peer(accountNumber)

	s.deliverAsync("meeting_proposed", nil,
		schema.Notification{
			Type:             schema.NotificationTypeMeetingProposed,
			RelatedMeetingID: meeting.ID,
			ConversationID:   conversationID,
		},
		&tasks.Signature{
			Name: "notify_meeting_proposed",
			Args: []tasks.Arg{
				stringArg(meeting.ID),
				accountsArg([]string{peer}),
			},
		},
		peer)

	c.JSON(http.StatusOK, gin.H{"result": meeting})
}

// listMeetings is the API to list the meetings proposed inside a
// conversation
func (s *Server) listMeetings(c *gin.Context) {
	accountNumber := c.GetString("requester")
	conversationID := c.Param("conversationID")

	conversation, err := s.mongoStore.GetConversation(conversationID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if !conversation.HasParticipant(accountNumber) {
		abortWithEncoding(c, http.StatusForbidden, errorNotAParticipant)
		return
	}

	meetings, err := s.mongoStore.ListMeetings(conversationID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// respondMeeting is the API to settle a pending meeting proposal. Accepting
// arms the durable reminder of the meeting; repeated accepts of the same
// meeting are conflicts, not second timers.
func (s *Server) respondMeeting(c *gin.Context) {
	accountNumber := c.GetString("requester")
	meetingID := c.Param("meetingID")

	var params struct {
		Status string `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Status != schema.MeetingStateAccepted && params.Status != schema.MeetingStateRejected {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	meeting, err := s.mongoStore.RespondMeeting(meetingID, accountNumber,
		params.Status == schema.MeetingStateAccepted)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if meeting.Status == schema.MeetingStateAccepted && s.cadenceClient != nil {
		if err := utils.TriggerMeetingReminder(s.cadenceClient, c, meeting.ID, meeting.ScheduledAt); err != nil {
			// the acceptance already committed; surface the scheduling
			// failure without rolling the response back
			log.WithField("api", "respondMeeting").
				WithField("meeting_id", meeting.ID).
				WithError(err).Error("fail to arm meeting reminder")
			c.Error(err)
		}
	}

	msgType := "meeting_rejected"
	notificationType := schema.NotificationTypeMeetingRejected
	if meeting.Status == schema.MeetingStateAccepted {
		msgType = "meeting_accepted"
		notificationType = schema.NotificationTypeMeetingAccepted
	}

	s.deliverAsync(msgType, nil,
		schema.Notification{
			Type:             notificationType,
			RelatedMeetingID: meeting.ID,
			ConversationID:   meeting.ConversationID,
		},
		&tasks.Signature{
			Name: "notify_meeting_responded",
			Args: []tasks.Arg{
				stringArg(meeting.ID),
				stringArg(meeting.Status),
				accountsArg([]string{meeting.Proposer}),
			},
		},
		meeting.Proposer)

	c.JSON(http.StatusOK, gin.H{"result": meeting})
}
