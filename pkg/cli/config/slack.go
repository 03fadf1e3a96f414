package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/atrium-hq/atrium/pkg/service/notify"
)

// Slack holds CLI flags for the Slack notification sink
type Slack struct {
	botToken  string
	channelID string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (for posting notifications)",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("ATRIUM_SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID to post meeting notifications to",
			Category:    "Slack",
			Destination: &x.channelID,
			Sources:     cli.EnvVars("ATRIUM_SLACK_CHANNEL_ID"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel-id", x.channelID),
	)
}

// IsConfigured checks if Slack configuration is complete
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" && x.channelID != ""
}

// Configure creates a Slack notification sink when both the bot token and
// channel are set. Returns nil when Slack is not configured.
func (x *Slack) Configure() (*notify.SlackSink, error) {
	if x.botToken == "" && x.channelID == "" {
		return nil, nil
	}
	if !x.IsConfigured() {
		return nil, goerr.New("both --slack-bot-token and --slack-channel-id are required for Slack notifications")
	}

	sink, err := notify.NewSlackSink(x.botToken, x.channelID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Slack sink")
	}
	return sink, nil
}
