// Package notifier delivers shift alerts to the courier. The destination is
// a single URI: slack://<bot-token>@<channel-id> posts through the Slack API,
// http(s):// posts to an Apprise API endpoint, which fans out to whatever
// channels the courier configured there.
package notifier

import (
	"fmt"
	"net/url"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/slack-go/slack"
)

// FromURL builds the notifier for the given destination URI. An URI this
// function cannot place is a startup configuration error.
func FromURL(raw string) (contract.Notifier, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid notification URL: %w", err)
	}

	switch u.Scheme {
	case "slack":
		token := u.User.Username()
		channelID := u.Host
		if token == "" || channelID == "" {
			return nil, fmt.Errorf("slack notification URL must look like slack://<bot-token>@<channel-id>")
		}
		return NewSlack(slack.New(token), channelID), nil
	case "http", "https":
		return NewApprise(raw), nil
	default:
		return nil, fmt.Errorf("unsupported notification URL scheme %q", u.Scheme)
	}
}
