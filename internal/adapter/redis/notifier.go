// Package redis publishes notifications to Redis pub/sub channels so that
// delivery processes (websocket gateways, mailers) on any instance can pick
// them up.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/heartmarshall/taskflow-backend/internal/config"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

const publishTimeout = 2 * time.Second

// Message is the JSON payload published on a channel.
type Message struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	WorkItemID int64     `json:"work_item_id"`
	ActorID    int64     `json:"actor_id,omitempty"`
	ActorName  string    `json:"actor_name,omitempty"`
	Status     string    `json:"status,omitempty"`
	Previous   string    `json:"previous_status,omitempty"`
	Text       string    `json:"text,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toMessage(n domain.Notification) Message {
	return Message{
		ID:         n.ID,
		Type:       string(n.Type),
		WorkItemID: n.WorkItemID,
		ActorID:    n.ActorID,
		ActorName:  n.ActorName,
		Status:     string(n.Status),
		Previous:   string(n.Previous),
		Text:       n.Text,
		OccurredAt: n.OccurredAt,
	}
}

// NewClient creates a Redis client from config and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Notifier publishes notifications. Failures are logged and swallowed;
// callers never see them.
type Notifier struct {
	client *redis.Client
	prefix string
	log    *slog.Logger
}

// NewNotifier creates a Notifier publishing under channelPrefix.
func NewNotifier(log *slog.Logger, client *redis.Client, channelPrefix string) *Notifier {
	return &Notifier{
		client: client,
		prefix: channelPrefix,
		log:    log.With("component", "redis_notifier"),
	}
}

// ItemChannel is the channel for everyone watching a work item.
func (n *Notifier) ItemChannel(workItemID int64) string {
	return fmt.Sprintf("%s:work_item:%d", n.prefix, workItemID)
}

// UserChannel is the channel for one user's direct notifications.
func (n *Notifier) UserChannel(userID int64) string {
	return fmt.Sprintf("%s:user:%d", n.prefix, userID)
}

// Broadcast publishes to the work item channel.
func (n *Notifier) Broadcast(ctx context.Context, workItemID int64, note domain.Notification) {
	n.publish(ctx, n.ItemChannel(workItemID), note)
}

// SendTo publishes to the user channel.
func (n *Notifier) SendTo(ctx context.Context, userID int64, note domain.Notification) {
	n.publish(ctx, n.UserChannel(userID), note)
}

// Ping reports whether Redis is reachable.
func (n *Notifier) Ping(ctx context.Context) error {
	return n.client.Ping(ctx).Err()
}

func (n *Notifier) publish(ctx context.Context, channel string, note domain.Notification) {
	payload, err := json.Marshal(toMessage(note))
	if err != nil {
		n.log.ErrorContext(ctx, "marshal notification", slog.String("error", err.Error()))
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := n.client.Publish(pubCtx, channel, payload).Err(); err != nil {
		n.log.WarnContext(ctx, "publish notification failed",
			slog.String("channel", channel),
			slog.String("type", string(note.Type)),
			slog.String("error", err.Error()),
		)
	}
}
