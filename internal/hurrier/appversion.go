package hurrier

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// The Roadrunner app publishes releases through App Center; the auth endpoint
// wants a plausible app version in the user agent.
const appVersionURL = "https://api.appcenter.ms/v0.1/public/sdk/apps/91607026-b44d-46a9-86f9-7d59d86e3105/releases/latest"

const (
	fallbackAppVersion      = 291
	fallbackAppShortVersion = "v3.2209.4"
)

// probeAppVersion asks App Center for the latest release, falling back to a
// known-good version when the probe fails in any way.
func (c *Client) probeAppVersion(ctx context.Context) (int, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, appVersionURL, nil)
	if err != nil {
		return fallbackAppVersion, fallbackAppShortVersion
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Printf("App version probe failed, using fallback: %v", err)
		return fallbackAppVersion, fallbackAppShortVersion
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallbackAppVersion, fallbackAppShortVersion
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fallbackAppVersion, fallbackAppShortVersion
	}

	var release struct {
		Version      string `json:"version"`
		ShortVersion string `json:"short_version"`
	}
	if err := json.Unmarshal(body, &release); err != nil || release.Version == "" || release.ShortVersion == "" {
		return fallbackAppVersion, fallbackAppShortVersion
	}

	version := 0
	for _, r := range release.Version {
		if r < '0' || r > '9' {
			return fallbackAppVersion, fallbackAppShortVersion
		}
		version = version*10 + int(r-'0')
	}
	return version, release.ShortVersion
}
