package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/doumi-inc/doumi-api/dispatcher"
	"github.com/doumi-inc/doumi-api/external/push"
	"github.com/doumi-inc/doumi-api/schema"
)

// Background is a struct to maintain common clients
// and functions for all background workers
type Background struct {
	Push *push.Client

	// enqueuer towards the notification relay of the API process
	Dispatch *machinery.Server
}

// DispatchNotification hands a journaled notification over to the API
// process, which relays it onto the recipient's subscribed sessions.
// Workers have no hub of their own; without this hop a reminder would
// reach the push provider but never an open websocket.
func (b *Background) DispatchNotification(n *schema.Notification) error {
	if b.Dispatch == nil {
		return nil
	}

	payload, err := dispatcher.EncodeRelayPayload(n)
	if err != nil {
		return err
	}

	_, err = b.Dispatch.SendTask(&tasks.Signature{
		Name:       dispatcher.RelayTaskName,
		RoutingKey: dispatcher.RelayQueue,
		Args: []tasks.Arg{
			{Type: "string", Value: payload},
		},
	})
	return err
}
