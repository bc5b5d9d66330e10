package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"sync"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doumi-inc/doumi-api/dispatcher"
	"github.com/doumi-inc/doumi-api/external/cadence"
	"github.com/doumi-inc/doumi-api/external/signaling"
	"github.com/doumi-inc/doumi-api/logmodule"
	"github.com/doumi-inc/doumi-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.DoumiCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// push fan-out to connected clients
	hub *dispatcher.Hub

	// bridge from worker processes onto the hub
	relay *dispatcher.Relay

	// in-flight notification deliveries spawned off the request path
	notifier sync.WaitGroup

	// External services
	signaling     signaling.Provider
	cadenceClient *cadence.CadenceClient

	// job pool enqueuer
	backgroundEnqueuer *machinery.Server

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	cadenceClient *cadence.CadenceClient,
	jwtKey *rsa.PrivateKey) *Server {
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	hub := dispatcher.NewHub()

	s := &Server{
		store:              store.NewDoumiStore(ormDB, mongoStore),
		mongoStore:         mongoStore,
		jwtPrivateKey:      jwtKey,
		hub:                hub,
		signaling:          signaling.New(viper.GetString("signaling.endpoint"), viper.GetString("signaling.apikey"), httpClient),
		cadenceClient:      cadenceClient,
		backgroundEnqueuer: backgroundEnqueuer,
		httpClient:         httpClient,
	}
	if backgroundEnqueuer != nil {
		s.relay = dispatcher.NewRelay(hub, backgroundEnqueuer)
	}

	return s
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	// consume worker-originated notifications so timer-driven alerts
	// reach subscribed websocket clients too
	if s.relay != nil {
		go func() {
			if err := s.relay.Run(); err != nil {
				log.WithError(err).Error("notification relay stopped")
			}
		}()
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateMetadata)
		accountRoute.DELETE("/me", s.accountDelete)
	}

	authorized := apiRoute.Group("")
	authorized.Use(s.recognizeAccountMiddleware())

	requestRoute := authorized.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PATCH("/:requestID", s.updateRequest)
		requestRoute.POST("/:requestID/applications", s.applyToRequest)
		requestRoute.GET("/:requestID/applications", s.listApplications)
		requestRoute.PATCH("/:requestID/applications/:applicationID", s.selectApplication)
	}

	conversationRoute := authorized.Group("/conversations")
	{
		conversationRoute.GET("", s.listConversations)
		conversationRoute.GET("/:conversationID", s.getConversation)
		conversationRoute.GET("/:conversationID/events", s.listEvents)
		conversationRoute.POST("/:conversationID/messages", s.postMessage)
		conversationRoute.POST("/:conversationID/meetings", s.proposeMeeting)
		conversationRoute.GET("/:conversationID/meetings", s.listMeetings)
		conversationRoute.POST("/:conversationID/calls", s.initiateCall)
	}

	meetingRoute := authorized.Group("/meetings")
	{
		meetingRoute.PATCH("/:meetingID", s.respondMeeting)
	}

	callRoute := authorized.Group("/calls")
	{
		callRoute.PATCH("/:callID", s.respondCall)
	}

	notificationRoute := authorized.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.GET("/subscribe", s.subscribeNotifications)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "Doumi 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

// abortWithStoreError maps a domain error from the store onto its HTTP
// status and error code. Unknown errors fall through as internal errors.
func abortWithStoreError(c *gin.Context, err error) {
	switch err {
	case store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
	case store.ErrApplicationNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorApplicationNotFound, err)
	case store.ErrConversationNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorConversationNotFound, err)
	case store.ErrMeetingNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorMeetingNotFound, err)
	case store.ErrCallNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorCallNotFound, err)
	case store.ErrInvalidRequestState:
		abortWithEncoding(c, http.StatusConflict, errorInvalidRequestState, err)
	case store.ErrDuplicateApplication:
		abortWithEncoding(c, http.StatusConflict, errorDuplicateApplication, err)
	case store.ErrAlreadyMatched:
		abortWithEncoding(c, http.StatusConflict, errorAlreadyMatched, err)
	case store.ErrMeetingResolved:
		abortWithEncoding(c, http.StatusConflict, errorMeetingResolved, err)
	case store.ErrCallResolved:
		abortWithEncoding(c, http.StatusConflict, errorCallResolved, err)
	case store.ErrApplicationMismatch:
		abortWithEncoding(c, http.StatusConflict, errorApplicationMismatch, err)
	case store.ErrSelfApplication:
		abortWithEncoding(c, http.StatusForbidden, errorSelfApplication, err)
	case store.ErrRequestNotOwned:
		abortWithEncoding(c, http.StatusForbidden, errorRequestNotOwned, err)
	case store.ErrNotAParticipant:
		abortWithEncoding(c, http.StatusForbidden, errorNotAParticipant, err)
	case store.ErrProposerCannotAccept:
		abortWithEncoding(c, http.StatusForbidden, errorProposerCannotAccept, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
