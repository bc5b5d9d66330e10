package signaling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Provider is the boundary to the external call-transport service. This
// system only does session bookkeeping; media negotiation and frames are
// entirely the provider's business.
type Provider interface {
	CreateMediaSession(ctx context.Context, callID, callType string, participants []string) (string, error)
}

type provider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

type mediaSessionResponse struct {
	SessionHandle string `json:"session_handle"`
}

// CreateMediaSession asks the provider to set up a media session for an
// answered call and returns its opaque handle.
func (p *provider) CreateMediaSession(ctx context.Context, callID, callType string, participants []string) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"reference":    callID,
		"type":         callType,
		"participants": participants,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.endpoint+"/v1/sessions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Token", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("signaling provider replied with status: %d", resp.StatusCode)
	}

	var result mediaSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.SessionHandle, nil
}

func New(endpoint, apiKey string, client *http.Client) Provider {
	return &provider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   client,
	}
}
