package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// listConversations is the API to list every conversation the caller takes
// part in
func (s *Server) listConversations(c *gin.Context) {
	accountNumber := c.GetString("requester")

	conversations, err := s.mongoStore.ListConversations(accountNumber)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// getConversation is the API to query a single conversation
func (s *Server) getConversation(c *gin.Context) {
	accountNumber := c.GetString("requester")

	conversation, err := s.mongoStore.GetConversation(c.Param("conversationID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if !conversation.HasParticipant(accountNumber) {
		abortWithEncoding(c, http.StatusForbidden, errorNotAParticipant)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": conversation})
}

// listEvents is the API to replay a conversation log. Clients resume from
// the last sequence number they saw via `since_seq`.
func (s *Server) listEvents(c *gin.Context) {
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

	var sinceSeq, limit int64
	if v := c.Query("since_seq"); v != "" {
		if sinceSeq, err = strconv.ParseInt(v, 10, 64); err != nil || sinceSeq < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}
	if v := c.Query("limit"); v != "" {
		if limit, err = strconv.ParseInt(v, 10, 64); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	events, err := s.mongoStore.ListEvents(conversationID, sinceSeq, limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// postMessage is the API to append a chat message to a conversation
func (s *Server) postMessage(c *gin.Context) {
	accountNumber := c.GetString("requester")
	conversationID := c.Param("conversationID")

	var params struct {
		Body string `json:"body"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Body == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	event, err := s.mongoStore.AppendTextMessage(conversationID, accountNumber, params.Body)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": event})
}
