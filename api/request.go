package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doumi-inc/doumi-api/schema"
	"github.com/doumi-inc/doumi-api/store"
)

// createRequest is the API for a requester to file a new help request
func (s *Server) createRequest(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Tags        []string `json:"tags"`
		Urgency     string   `json:"urgency"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Title == "" || !schema.ValidCategory(params.Category) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Urgency == "" {
		params.Urgency = schema.UrgencyMedium
	}
	if !schema.ValidUrgency(params.Urgency) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	request, err := s.mongoStore.CreateRequest(accountNumber,
		params.Title, params.Description, params.Category, params.Tags, params.Urgency)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// listRequests is the API to browse help requests. Helpers filter the open
// board; a requester passes `mine=true` for their own postings.
func (s *Server) listRequests(c *gin.Context) {
	accountNumber := c.GetString("requester")

	filter := store.RequestFilter{
		Category: c.Query("category"),
		Urgency:  c.Query("urgency"),
		Freetext: c.Query("q"),
	}

	if c.Query("mine") == "true" {
		filter.Requester = accountNumber
	}

	if limit := c.Query("limit"); limit != "" {
		l, err := strconv.ParseInt(limit, 10, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		filter.Limit = l
	}

	if filter.Category != "" && !schema.ValidCategory(filter.Category) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if filter.Urgency != "" && !schema.ValidUrgency(filter.Urgency) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	requests, err := s.mongoStore.ListRequests(filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// getRequest is the API to query a single help request
func (s *Server) getRequest(c *gin.Context) {
	request, err := s.mongoStore.GetRequest(c.Param("requestID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// updateRequest is the API for the author to edit a waiting request or to
// drive its lifecycle: `status` set to completed closes a matched request,
// cancelled withdraws a waiting one, and an empty status edits the fields.
func (s *Server) updateRequest(c *gin.Context) {
	accountNumber := c.GetString("requester")
	requestID := c.Param("requestID")

	var params struct {
		Status      string   `json:"status"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Tags        []string `json:"tags"`
		Urgency     string   `json:"urgency"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	switch params.Status {
	case schema.RequestStateCompleted:
		if err := s.mongoStore.CompleteRequest(accountNumber, requestID); err != nil {
			abortWithStoreError(c, err)
			return
		}
	case schema.RequestStateCancelled:
		if err := s.mongoStore.CancelRequest(accountNumber, requestID); err != nil {
			abortWithStoreError(c, err)
			return
		}
	case "":
		if params.Category != "" && !schema.ValidCategory(params.Category) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		if params.Urgency != "" && !schema.ValidUrgency(params.Urgency) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}

		request, err := s.mongoStore.EditRequest(accountNumber, requestID,
			params.Title, params.Description, params.Category, params.Tags, params.Urgency)
		if err != nil {
			abortWithStoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"result": request})
		return
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
