// Package events publishes domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"pollbox/internal/middleware"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"log/slog"
)

// VoteEvent is the payload published when a vote is accepted.
type VoteEvent struct {
	EventID     string    `json:"event_id"`
	PollID      uint      `json:"poll_id"`
	OptionID    uint      `json:"option_id"`
	UserID      uint      `json:"user_id,omitempty"`
	IsAnonymous bool      `json:"is_anonymous"`
	CastAt      time.Time `json:"cast_at"`
}

// Producer publishes vote events. A nil Producer is a no-op, so callers can
// run without Kafka configured.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer returns a Producer writing to the given brokers and topic.
// Returns nil when no brokers are configured.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 {
		return nil
	}

	// Hash balancer keyed by poll ID keeps one poll's events on one partition.
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{writer: writer, topic: topic}
}

// PublishVote sends a vote event. Anonymous votes carry no user ID.
func (p *Producer) PublishVote(ctx context.Context, pollID, optionID, userID uint, anonymous bool, castAt time.Time) error {
	if p == nil {
		return nil
	}

	event := VoteEvent{
		EventID:     uuid.NewString(),
		PollID:      pollID,
		OptionID:    optionID,
		IsAnonymous: anonymous,
		CastAt:      castAt,
	}
	if !anonymous {
		event.UserID = userID
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal vote event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(pollID), 10)),
		Value: data,
		Time:  castAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish vote event: %w", err)
	}

	middleware.Logger.DebugContext(ctx, "vote event published",
		slog.String("event_id", event.EventID),
		slog.Any("poll_id", pollID),
	)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
