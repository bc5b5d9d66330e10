package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

var ErrAllPlayersNotSubscribed = fmt.Errorf("all included players are not subscribed")

// NotificationRequest is the request body for submitting a push through the
// provider. Headings and Contents are maps keyed by language code.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

type errorResponse struct {
	Errors []string `json:"errors"`
}

// Client submits push notifications to the external provider. The provider
// owns device registration and the actual delivery mechanics; this client
// only hands notifications over.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClient(client *http.Client) *Client {
	return &Client{
		endpoint: viper.GetString("push.endpoint"),
		apiKey:   viper.GetString("push.apikey"),
		client:   client,
	}
}

// SendNotification submits one push request to the provider.
func (c *Client) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/api/v1/notifications", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		if result.Errors[0] == "All included players are not subscribed" {
			return ErrAllPlayersNotSubscribed
		}
		return fmt.Errorf("push provider error: %s", result.Errors[0])
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push provider replied with status: %d", resp.StatusCode)
	}

	return nil
}

// IsErrAllPlayersNotSubscribed distinguishes the benign "no registered
// device" failure from real delivery errors.
func IsErrAllPlayersNotSubscribed(err error) bool {
	return err == ErrAllPlayersNotSubscribed
}
