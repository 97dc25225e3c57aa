package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// appriseNotifier posts to an Apprise API endpoint
// (e.g. https://apprise.example.com/notify/courier), the self-hosted bridge
// to Apprise's multi-channel delivery.
type appriseNotifier struct {
	hc       *http.Client
	endpoint string
}

func NewApprise(endpoint string) *appriseNotifier {
	return &appriseNotifier{
		hc:       &http.Client{Timeout: 10 * time.Second},
		endpoint: endpoint,
	}
}

func (n *appriseNotifier) Notify(ctx context.Context, title, body string) error {
	payload, err := json.Marshal(map[string]string{
		"title": title,
		"body":  body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.hc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach apprise endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("apprise endpoint rejected notification (status=%d)", resp.StatusCode)
	}
	return nil
}
