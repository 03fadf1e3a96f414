package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
)

// slackAPI is the subset of the Slack client used by the sink
type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// SlackSink mirrors notifications to a Slack channel
type SlackSink struct {
	api       slackAPI
	channelID string
}

// NewSlackSink creates a sink posting to the given channel with the bot
// token
func NewSlackSink(token, channelID string) (*SlackSink, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channelID == "" {
		return nil, goerr.New("Slack channel ID is required")
	}

	return &SlackSink{
		api:       slack.New(token),
		channelID: channelID,
	}, nil
}

// Deliver posts the notification as a Block Kit message
func (s *SlackSink) Deliver(ctx context.Context, n model.Notification) error {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("%s %s", typeEmoji(n.Type), n.Title), true, false),
	)
	body := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, n.Message, false, false),
		nil, nil,
	)

	blocks := []slack.Block{header, body}
	if n.MeetingID != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("meeting: `%s`", n.MeetingID), false, false),
		))
	}

	_, _, err := s.api.PostMessageContext(ctx, s.channelID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(fmt.Sprintf("%s: %s", n.Title, n.Message), false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post notification to Slack",
			goerr.V("channelID", s.channelID),
			goerr.V("notificationID", n.ID),
		)
	}

	return nil
}

func typeEmoji(t types.NotificationType) string {
	switch t {
	case types.NotificationSuccess:
		return "✅"
	case types.NotificationWarning:
		return "⚠️"
	case types.NotificationError:
		return "🚨"
	default:
		return "ℹ️"
	}
}
