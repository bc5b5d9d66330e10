// Package dispatcher fans out notifications to the websocket sessions of
// connected clients. Delivery is best-effort: publishing never blocks the
// state transition that triggered it, and a session that cannot keep up is
// dropped rather than waited on.
package dispatcher

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/doumi-inc/doumi-api/schema"
)

var log = logrus.WithField("prefix", "dispatcher")

// sessionBuffer is how many undelivered notifications a session may lag
// behind before it is considered dead.
const sessionBuffer = 16

// Session is one subscribed client connection of an account. An account
// may hold several sessions (multiple devices); each receives every
// notification addressed to the account.
type Session struct {
	hub     *Hub
	account string
	send    chan *schema.Notification

	closeOnce sync.Once
}

// Notifications is the push stream of the session. The channel is closed
// when the session is dropped or closed.
func (s *Session) Notifications() <-chan *schema.Notification {
	return s.send
}

// Close unsubscribes the session from its hub.
func (s *Session) Close() {
	s.hub.unsubscribe(s)
}

// Hub is the per-process registry of subscribed sessions.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*Session]struct{}
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[*Session]struct{}),
	}
}

// Subscribe registers a new push session for an account.
func (h *Hub) Subscribe(accountNumber string) *Session {
	s := &Session{
		hub:     h,
		account: accountNumber,
		send:    make(chan *schema.Notification, sessionBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sessions[accountNumber] == nil {
		h.sessions[accountNumber] = make(map[*Session]struct{})
	}
	h.sessions[accountNumber][s] = struct{}{}

	return s
}

func (h *Hub) unsubscribe(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessions, ok := h.sessions[s.account]
	if !ok {
		return
	}
	if _, ok := sessions[s]; !ok {
		return
	}

	delete(sessions, s)
	if len(sessions) == 0 {
		delete(h.sessions, s.account)
	}

	s.closeOnce.Do(func() {
		close(s.send)
	})
}

// Publish delivers a notification to every session of the addressed
// accounts. A full session buffer drops the session instead of blocking
// the publisher; the client re-syncs from the notification feed on
// reconnect.
func (h *Hub) Publish(notification *schema.Notification, accountNumbers ...string) {
	stale := make([]*Session, 0)

	h.mu.RLock()
	for _, account := range accountNumbers {
		for s := range h.sessions[account] {
			select {
			case s.send <- notification:
			default:
				stale = append(stale, s)
			}
		}
	}
	h.mu.RUnlock()

	for _, s := range stale {
		log.WithField("account_number", s.account).Warn("dropping slow notification session")
		h.unsubscribe(s)
	}
}

// Connected returns how many sessions an account currently holds.
func (h *Hub) Connected(accountNumber string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[accountNumber])
}
