package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// WebhookExecutor is the part of *discordgo.Session used to post webhook messages
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier posts messages to a channel webhook
type DiscordNotifier struct {
	session   WebhookExecutor
	webhookID string
	token     string
}

// NewDiscordNotifier parses a webhook URL of the form
// https://discord.com/api/webhooks/<id>/<token>
func NewDiscordNotifier(session WebhookExecutor, webhookURL string) (*DiscordNotifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	return &DiscordNotifier{session: session, webhookID: id, token: token}, nil
}

// NewDiscordSession creates an unauthenticated session; webhooks carry their own token
func NewDiscordSession() (*discordgo.Session, error) {
	return discordgo.New("")
}

// ParseWebhookURL extracts the webhook id and token
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", ErrMsgInvalidWebhook, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("%s: %q", ErrMsgInvalidWebhook, raw)
}

// Notify posts message. Discord renders the same Markdown subset used by the sale text.
func (d *DiscordNotifier) Notify(ctx context.Context, message string) bool {
	_, err := d.session.WebhookExecute(d.webhookID, d.token, false, &discordgo.WebhookParams{
		Content: message,
	}, discordgo.WithContext(ctx))
	if err != nil {
		err = fmt.Errorf("%s: %w", ErrMsgDiscordExecution, err)
	}
	return record(ctx, BackendDiscord, err)
}
