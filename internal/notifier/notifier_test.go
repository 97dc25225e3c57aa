package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name: "Should build a slack notifier",
			url:  "slack://xoxb-12345@C0123456789",
		},
		{
			name: "Should build an apprise notifier",
			url:  "https://apprise.example.com/notify/courier",
		},
		{
			name:    "Should reject a slack URL without a channel",
			url:     "slack://xoxb-12345@",
			wantErr: true,
		},
		{
			name:    "Should reject a slack URL without a token",
			url:     "slack://C0123456789",
			wantErr: true,
		},
		{
			name:    "Should reject an unknown scheme",
			url:     "smtp://mail.example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := FromURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, n)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, n)
		})
	}
}

type fakeSlackAPI struct {
	channelID string
	err       error
	calls     int
}

func (f *fakeSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	f.calls++
	f.channelID = channelID
	return "", "", f.err
}

func TestSlackNotifier_Notify(t *testing.T) {
	api := &fakeSlackAPI{}
	n := NewSlack(api, "C42")

	err := n.Notify(context.Background(), "title", "body")
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, "C42", api.channelID)
}

func TestSlackNotifier_Notify_Error(t *testing.T) {
	api := &fakeSlackAPI{err: fmt.Errorf("channel_not_found")}
	n := NewSlack(api, "C42")

	err := n.Notify(context.Background(), "title", "body")
	assert.Error(t, err)
}

func TestAppriseNotifier_Notify(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := NewApprise(srv.URL)

	err := n.Notify(context.Background(), "2 new shifts were found", "details")
	require.NoError(t, err)
	assert.Equal(t, "2 new shifts were found", got["title"])
	assert.Equal(t, "details", got["body"])
}

func TestAppriseNotifier_Notify_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFailedDependency)
	}))
	defer srv.Close()

	n := NewApprise(srv.URL)
	assert.Error(t, n.Notify(context.Background(), "t", "b"))
}
