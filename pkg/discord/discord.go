package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var errWebhookRequired = errors.New("discord: webhook ID and token are required")

const webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

// DefaultConfig returns the default Discord service configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      time.Second,
		DefaultUsername: "fieldservice-srv",
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) Close() error {
	return nil
}

// SendMessage posts a plain-text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed posts an embed built from the given options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := Embed{
		Title:       options.Title,
		Description: options.Description,
		Color:       colorForType(options.Type),
		Fields:      options.Fields,
		Footer:      options.Footer,
		Author:      options.Author,
		Thumbnail:   options.Thumbnail,
		Image:       options.Image,
	}
	if !options.Timestamp.IsZero() {
		embed.Timestamp = options.Timestamp.UTC().Format(time.RFC3339)
	}

	username := options.Username
	if username == "" {
		username = d.config.DefaultUsername
	}

	return d.send(ctx, WebhookPayload{
		Username:  username,
		AvatarURL: options.AvatarURL,
		Embeds:    []Embed{embed},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Level:       LevelHigh,
		Title:       title,
		Description: description,
		Fields:      fields,
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) SendSuccess(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeSuccess,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Level:       LevelUrgent,
		Title:       "Bug Report",
		Description: message,
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) SendNotification(ctx context.Context, title, description string, fields map[string]string) error {
	embedFields := make([]EmbedField, 0, len(fields))
	for name, value := range fields {
		embedFields = append(embedFields, EmbedField{Name: name, Value: value, Inline: true})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
		Fields:      embedFields,
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) SendActivityLog(ctx context.Context, action, user, details string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:  MessageTypeInfo,
		Title: "Activity Log",
		Fields: []EmbedField{
			{Name: "Action", Value: action, Inline: true},
			{Name: "User", Value: user, Inline: true},
			{Name: "Details", Value: details},
		},
		Timestamp: time.Now(),
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create webhook request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		resp.Body.Close()

		if resp.StatusCode < 300 {
			return nil
		}
		lastErr = fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	return fmt.Errorf("failed to send Discord message: %w", lastErr)
}

func colorForType(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return 0x2ecc71
	case MessageTypeWarning:
		return 0xf1c40f
	case MessageTypeError:
		return 0xe74c3c
	default:
		return 0x3498db
	}
}
