package firebase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"web-messenger/domain"
	"web-messenger/errors"
	"web-messenger/internal"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const (
	notificationTitle = "New message"
	maxPreviewRunes   = 120
)

type sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Notifier pushes an FCM notification to the receiver's topic for every sent message.
type Notifier struct {
	log    *slog.Logger
	client sender
}

func NewNotifier(log *slog.Logger, client sender) *Notifier {
	return &Notifier{log: log, client: client}
}

// NewNotifierFromConfig initializes the Firebase app and its messaging client.
// It returns ErrNotifierDisabled when real-time messaging is off or no project is configured.
func NewNotifierFromConfig(ctx context.Context, log *slog.Logger, cfg internal.Config) (*Notifier, error) {
	if !cfg.NotificationsEnabled() {
		return nil, errors.ErrNotifierDisabled
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	app, err := fb.NewApp(ctx, &fb.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Firebase.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase messaging: %w", err)
	}
	log.Info("Firebase notifier ready", "project", cfg.Firebase.ProjectID)
	return NewNotifier(log, client), nil
}

func (n *Notifier) NotifyMessage(ctx context.Context, message domain.Message) error {
	id, err := n.client.Send(ctx, BuildMessage(message))
	if err != nil {
		return fmt.Errorf("sending notification for %s: %w", message.ID, err)
	}
	n.log.Debug("Notification sent", "fcm_id", id, "message_id", message.ID, "receiver", message.ReceiverID)
	return nil
}

// BuildMessage maps a chat message to the FCM payload sent to its receiver.
func BuildMessage(message domain.Message) *messaging.Message {
	return &messaging.Message{
		Topic: Topic(message.ReceiverID),
		Notification: &messaging.Notification{
			Title: notificationTitle,
			Body:  preview(message.Content),
		},
		Data: map[string]string{
			"messageId":  message.ID,
			"senderId":   message.SenderID,
			"receiverId": message.ReceiverID,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}
}

// Topic returns the FCM topic of a user. FCM only accepts [a-zA-Z0-9-_.~%]
// in topic names, anything else is replaced by an underscore.
func Topic(userID string) string {
	return "user_" + strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune("-_.~%", r):
			return r
		default:
			return '_'
		}
	}, userID)
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= maxPreviewRunes {
		return content
	}
	return string(runes[:maxPreviewRunes-1]) + "…"
}
