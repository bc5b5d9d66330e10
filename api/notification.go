package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 45 * time.Second
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// JWT auth already gates this endpoint
	CheckOrigin: func(r *http.Request) bool { return true },
}

// listNotifications is the API to read the recent notification feed of the
// caller
func (s *Server) listNotifications(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var limit int64
	if v := c.Query("limit"); v != "" {
		l, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		limit = l
	}

	notifications, err := s.mongoStore.ListNotifications(accountNumber, limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// subscribeNotifications upgrades the request to a websocket and streams
// the caller's notifications as they are published. Delivery over the
// socket is best-effort; the feed endpoint is the catch-up path after a
// disconnect.
func (s *Server) subscribeNotifications(c *gin.Context) {
	accountNumber := c.GetString("requester")
	logger := log.WithField("api", "subscribeNotifications").
		WithField("account_number", accountNumber)

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithError(err).Error("fail to upgrade connection")
		return
	}

	session := s.hub.Subscribe(accountNumber)
	defer session.Close()

	// drain client frames so close and pong frames are processed
	go func() {
		defer conn.Close()
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				session.Close()
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	defer conn.Close()

	for {
		select {
		case notification, ok := <-session.Notifications():
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(wsWriteWait))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(notification); err != nil {
				logger.WithError(err).Warn("fail to write notification")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
