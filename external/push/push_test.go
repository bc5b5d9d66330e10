package push_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/doumi-inc/doumi-api/external/push"
)

func TestSendNotification(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method, "wrong method")
		assert.Equal(t, "/api/v1/notifications", r.URL.Path, "wrong path")
		assert.Equal(t, "Basic test-key", r.Header.Get("Authorization"), "wrong authorization")

		var body push.NotificationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-app", body.AppID)
		assert.Equal(t, "약속 알림", body.Headings["ko"])

		_, _ = w.Write([]byte(`{"id":"push-1"}`))
	}))
	defer ts.Close()

	viper.Set("push.endpoint", ts.URL)
	viper.Set("push.apikey", "test-key")

	client := push.NewClient(ts.Client())
	err := client.SendNotification(context.Background(), &push.NotificationRequest{
		AppID:    "test-app",
		Headings: map[string]string{"ko": "약속 알림", "en": "Meeting reminder"},
		Contents: map[string]string{"ko": "30분 후 약속이 있어요.", "en": "Your meeting starts in 30 minutes."},
		Filters: []map[string]string{
			{"field": "tag", "key": "account_number", "relation": "=", "value": "account-a"},
		},
	})
	assert.Nil(t, err, "wrong SendNotification")
}

func TestSendNotificationNoSubscribedDevice(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":["All included players are not subscribed"]}`))
	}))
	defer ts.Close()

	viper.Set("push.endpoint", ts.URL)
	viper.Set("push.apikey", "test-key")

	client := push.NewClient(ts.Client())
	err := client.SendNotification(context.Background(), &push.NotificationRequest{
		AppID: "test-app",
	})
	assert.True(t, push.IsErrAllPlayersNotSubscribed(err), "wrong error classification")
}

func TestSendNotificationProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":["app_id is invalid"]}`))
	}))
	defer ts.Close()

	viper.Set("push.endpoint", ts.URL)
	viper.Set("push.apikey", "test-key")

	client := push.NewClient(ts.Client())
	err := client.SendNotification(context.Background(), &push.NotificationRequest{})
	assert.Error(t, err)
	assert.False(t, push.IsErrAllPlayersNotSubscribed(err))
}
