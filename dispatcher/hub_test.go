package dispatcher

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/doumi-inc/doumi-api/schema"
)

func TestPublishToSubscribedAccounts(t *testing.T) {
	hub := NewHub()

	alice := hub.Subscribe("alice")
	defer alice.Close()
	bob := hub.Subscribe("bob")
	defer bob.Close()

	hub.Publish(&schema.Notification{
		ID:   "n1",
		Type: schema.NotificationTypeNewApplication,
	}, "alice")

	select {
	case n := <-alice.Notifications():
		assert.Equal(t, "n1", n.ID)
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}

	select {
	case <-bob.Notifications():
		t.Fatal("bob should not receive alice's notification")
	default:
	}
}

func TestPublishToEverySessionOfAnAccount(t *testing.T) {
	hub := NewHub()

	phone := hub.Subscribe("alice")
	defer phone.Close()
	tablet := hub.Subscribe("alice")
	defer tablet.Close()

	assert.Equal(t, 2, hub.Connected("alice"))

	hub.Publish(&schema.Notification{ID: "n1"}, "alice")

	for _, session := range []*Session{phone, tablet} {
		select {
		case n := <-session.Notifications():
			assert.Equal(t, "n1", n.ID)
		case <-time.After(time.Second):
			t.Fatal("notification was not delivered to every session")
		}
	}
}

func TestSlowSessionIsDropped(t *testing.T) {
	hub := NewHub()

	slow := hub.Subscribe("alice")

	// never read: overflow the buffer and one more
	for i := 0; i <= sessionBuffer; i++ {
		hub.Publish(&schema.Notification{ID: fmt.Sprintf("n%d", i)}, "alice")
	}

	assert.Equal(t, 0, hub.Connected("alice"))

	// the channel is drained and then closed
	received := 0
	for range slow.Notifications() {
		received++
	}
	assert.Equal(t, sessionBuffer, received)

	// publishing afterwards must not panic or block
	hub.Publish(&schema.Notification{ID: "late"}, "alice")
}

func TestCloseUnsubscribes(t *testing.T) {
	hub := NewHub()

	session := hub.Subscribe("alice")
	assert.Equal(t, 1, hub.Connected("alice"))

	session.Close()
	assert.Equal(t, 0, hub.Connected("alice"))

	_, open := <-session.Notifications()
	assert.False(t, open)

	// closing twice is harmless
	session.Close()
}
