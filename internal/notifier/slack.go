package notifier

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// SlackAPI is the slice of the Slack client this package uses.
// This allows mocking in tests while keeping the real implementation simple.
type SlackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type slackNotifier struct {
	api       SlackAPI
	channelID string
}

func NewSlack(api SlackAPI, channelID string) *slackNotifier {
	return &slackNotifier{api: api, channelID: channelID}
}

func (n *slackNotifier) Notify(ctx context.Context, title, body string) error {
	text := fmt.Sprintf("*%s*\n%s", title, body)
	_, _, err := n.api.PostMessageContext(ctx, n.channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post slack message: %w", err)
	}
	return nil
}
