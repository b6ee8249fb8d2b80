package app

import (
	"context"

	"github.com/courtsidehq/courtside/external/slackchat"
	"github.com/courtsidehq/courtside/internal/platform/logging"
)

// slackPoster adapts the Slack client to the preview layer, attaching
// Block Kit sections unless plain text was requested.
type slackPoster struct {
	client    *slackchat.Client
	plainText bool
}

func (p *slackPoster) PostGameWithThread(ctx context.Context, channel, parentText, threadText string) (string, string, error) {
	var parentBlocks, threadBlocks []slackchat.Block
	if !p.plainText {
		parentBlocks = slackchat.BlocksFromText(parentText)
		threadBlocks = slackchat.BlocksFromText(threadText)
	}
	return p.client.PostGameWithThread(ctx, channel, parentText, threadText, parentBlocks, threadBlocks)
}

// dryRunPoster logs rendered messages instead of delivering them.
type dryRunPoster struct {
	logger *logging.Logger
}

func (p *dryRunPoster) PostGameWithThread(ctx context.Context, channel, parentText, threadText string) (string, string, error) {
	p.logger.InfoContext(ctx, "dry run: parent message", "channel", channel, "body", "\n"+parentText)
	if threadText != "" {
		p.logger.InfoContext(ctx, "dry run: thread reply", "channel", channel, "body", "\n"+threadText)
	}
	return "dry-run", "", nil
}
