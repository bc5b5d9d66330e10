package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/doumi-inc/doumi-api/schema"
)

// initiateCall is the API to ring the peer of a conversation right now
func (s *Server) initiateCall(c *gin.Context) {
	accountNumber := c.GetString("requester")
	conversationID := c.Param("conversationID")

	var params struct {
		Type string `json:"type"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Type == "" {
		params.Type = schema.CallTypeVoice
	}
	if !schema.ValidCallType(params.Type) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	session, err := s.mongoStore.InitiateCall(conversationID, accountNumber, params.Type)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	conversation, err := s.mongoStore.GetConversation(conversationID)
	if shouldInterupt(err, c) {
		return
	}
	callee := conversation.Peer(accountNumber)

	callerName := accountNumber
	if a, ok := c.MustGet("account").(*schema.Account); ok && a.Profile.DisplayName != "" {
		callerName = a.Profile.DisplayName
	}

	s.deliverAsync("call_incoming",
		map[string]interface{}{
			"Caller": callerName,
		},
		schema.Notification{
			Type:           schema.NotificationTypeCallIncoming,
			RelatedCallID:  session.ID,
			ConversationID: conversationID,
			Actionable:     true,
		},
		&tasks.Signature{
			Name: "notify_incoming_call",
			Args: []tasks.Arg{
				stringArg(session.ID),
				stringArg(callerName),
				accountsArg([]string{callee}),
			},
		},
		callee)

	c.JSON(http.StatusOK, gin.H{"result": session})
}

// respondCall is the API to answer, decline or hang up a call session
func (s *Server) respondCall(c *gin.Context) {
	accountNumber := c.GetString("requester")
	callID := c.Param("callID")

	var params struct {
		Action string `json:"action"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	switch params.Action {
	case "accept":
		s.acceptCall(c, callID, accountNumber)
	case "decline":
		session, err := s.mongoStore.DeclineCall(callID, accountNumber)
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": session})
	case "end":
		session, err := s.mongoStore.EndCall(callID, accountNumber)
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": session})
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
	}
}

// acceptCall answers a ringing session and provisions the media session at
// the external signaling provider. The ringing->active transition commits
// first; a provisioning failure leaves the session active without a handle
// and the client retries via the signaling provider directly.
func (s *Server) acceptCall(c *gin.Context, callID, accountNumber string) {
	session, err := s.mongoStore.AcceptCall(callID, accountNumber)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	conversation, err := s.mongoStore.GetConversation(session.ConversationID)
	if shouldInterupt(err, c) {
		return
	}

	handle, err := s.signaling.CreateMediaSession(c, session.ID, session.Type,
		[]string{conversation.Requester, conversation.Helper})
	if err != nil {
		log.WithField("api", "acceptCall").
			WithField("call_id", session.ID).
			WithError(err).Error("fail to provision media session")
		c.Error(err)
	} else {
		if err := s.mongoStore.SetCallMediaSession(session.ID, handle); shouldInterupt(err, c) {
			return
		}
		session.MediaSession = handle
	}

	c.JSON(http.StatusOK, gin.H{"result": session})
}
