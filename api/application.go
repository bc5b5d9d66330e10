package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/doumi-inc/doumi-api/schema"
)

// applyToRequest is the API for a helper to offer help on a waiting request
func (s *Server) applyToRequest(c *gin.Context) {
	accountNumber := c.GetString("requester")
	requestID := c.Param("requestID")

	var params struct {
		Intro string `json:"intro"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	application, err := s.mongoStore.ApplyToRequest(requestID, accountNumber, params.Intro)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	request, err := s.mongoStore.GetRequest(requestID)
	if shouldInterupt(err, c) {
		return
	}

	s.deliverAsync("new_application", nil,
		schema.Notification{
			Type: schema.NotificationTypeNewApplication,
		},
		&tasks.Signature{
			Name: "notify_new_application",
			Args: []tasks.Arg{
				stringArg(requestID),
				accountsArg([]string{request.Requester}),
			},
		},
		request.Requester)

	c.JSON(http.StatusOK, gin.H{"result": application})
}

// listApplications is the API to review the offers on a request. The author
// sees every application; a helper sees only their own.
func (s *Server) listApplications(c *gin.Context) {
	accountNumber := c.GetString("requester")
	requestID := c.Param("requestID")

	request, err := s.mongoStore.GetRequest(requestID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	applications, err := s.mongoStore.ListApplications(requestID)
	if shouldInterupt(err, c) {
		return
	}

	if request.Requester != accountNumber {
		own := make([]schema.Application, 0)
		for _, a := range applications {
			if a.Helper == accountNumber {
				own = append(own, a)
			}
		}
		applications = own
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

// selectApplication is the API for the author to pick the helper they want
// to work with. Selection matches the request, rejects the other offers and
// opens the conversation between the two parties.
func (s *Server) selectApplication(c *gin.Context) {
	accountNumber := c.GetString("requester")
	requestID := c.Param("requestID")
	applicationID := c.Param("applicationID")

	conversation, err := s.mongoStore.SelectApplication(accountNumber, requestID, applicationID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.deliverAsync("application_selected", nil,
		schema.Notification{
			Type:           schema.NotificationTypeApplicationSelected,
			ConversationID: conversation.ID,
		},
		&tasks.Signature{
			Name: "notify_application_selected",
			Args: []tasks.Arg{
				stringArg(conversation.ID),
				accountsArg([]string{conversation.Helper}),
			},
		},
		conversation.Helper)

	c.JSON(http.StatusOK, gin.H{"result": conversation})
}
