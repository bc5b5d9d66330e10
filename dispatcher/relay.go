package dispatcher

import (
	"encoding/json"
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/doumi-inc/doumi-api/schema"
)

const (
	// RelayQueue is the machinery queue bridging worker processes to the
	// hub of the API process.
	RelayQueue = "doumi_dispatch"

	// RelayTaskName is the registered name of the relay task.
	RelayTaskName = "relay_notification"
)

// relayPayload is the wire form of a relayed notification. The
// client-facing JSON of schema.Notification omits its recipient, so the
// relay wraps it with an explicit address.
type relayPayload struct {
	Recipient    string              `json:"recipient"`
	Notification schema.Notification `json:"notification"`
}

// EncodeRelayPayload serializes a notification for the relay queue.
func EncodeRelayPayload(n *schema.Notification) (string, error) {
	payload, err := json.Marshal(relayPayload{
		Recipient:    n.Recipient,
		Notification: *n,
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// Relay consumes notifications journaled by worker processes and publishes
// them onto the hub. The hub only exists inside the API process; a
// reminder fired by the cadence worker crosses this queue before a
// subscribed websocket client can see it.
type Relay struct {
	hub    *Hub
	server *machinery.Server
	worker *machinery.Worker
}

func NewRelay(hub *Hub, server *machinery.Server) *Relay {
	return &Relay{
		hub:    hub,
		server: server,
	}
}

// RelayNotification is the machinery task handler: decode the payload and
// publish it to the recipient's sessions.
func (r *Relay) RelayNotification(payload string) error {
	var p relayPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return err
	}

	p.Notification.Recipient = p.Recipient
	r.hub.Publish(&p.Notification, p.Recipient)
	return nil
}

// Run registers the relay task and consumes the relay queue until the
// worker stops.
func (r *Relay) Run() error {
	if r.worker != nil {
		return errors.New("relay worker has started")
	}

	if err := r.server.RegisterTask(RelayTaskName, r.RelayNotification); err != nil {
		return err
	}

	r.worker = r.server.NewCustomQueueWorker("doumi-dispatch", 1, RelayQueue)
	return r.worker.Launch()
}
