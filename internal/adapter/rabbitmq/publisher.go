package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"mesa-fund/internal/core/domain"
)

// eventMessage is the JSON body published for every ledger event.
type eventMessage struct {
	Seq        int64     `json:"seq"`
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	CampaignID int64     `json:"campaign_id"`
	Actor      string    `json:"actor"`
	Amount     int64     `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher implements port.EventPublisher on a durable topic exchange.
// Events are routed by kind, e.g. "contribution.recorded". An AMQP channel
// is not safe for concurrent use, so publishes are serialized.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	logger   *slog.Logger
}

// NewPublisher dials the broker, opens a channel and declares the exchange.
func NewPublisher(amqpURL, exchange string, logger *slog.Logger) (*Publisher, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	// bounded dial timeout so startup does not hang
	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}
	p := &Publisher{conn: conn, exchange: exchange, logger: logger}
	if err = p.reopen(); err != nil {
		conn.Close()
		return nil, err
	}
	return p, nil
}

// Publish sends events in order. A failed publish reopens the channel and
// is retried once before giving up; the remaining events are not sent.
func (p *Publisher) Publish(ctx context.Context, events []domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ev := range events {
		msg, err := encodeEvent(ev)
		if err != nil {
			return err
		}
		err = p.channel.PublishWithContext(ctx, p.exchange, string(ev.Kind), false, false, msg)
		if err == nil {
			continue
		}
		p.logger.Warn("publish failed; reopening channel",
			slog.String("exchange", p.exchange), slog.String("routing_key", string(ev.Kind)), slog.Any("error", err))
		if rerr := p.reopen(); rerr != nil {
			return errors.Join(err, rerr)
		}
		if err = p.channel.PublishWithContext(ctx, p.exchange, string(ev.Kind), false, false, msg); err != nil {
			return fmt.Errorf("publish event %d: %w", ev.Seq, err)
		}
	}
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

func (p *Publisher) reopen() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	if err = ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		return err
	}
	if p.channel != nil {
		p.channel.Close()
	}
	p.channel = ch
	return nil
}

// NoopPublisher is used when no broker is configured or it is unreachable
// at startup.
type NoopPublisher struct {
	Logger *slog.Logger
}

func (p NoopPublisher) Publish(ctx context.Context, events []domain.Event) error {
	if p.Logger != nil {
		p.Logger.DebugContext(ctx, "event publish skipped", slog.Int("events", len(events)))
	}
	return nil
}

func encodeEvent(ev domain.Event) (amqp091.Publishing, error) {
	body, err := json.Marshal(eventMessage{
		Seq:        ev.Seq,
		ID:         ev.ID.String(),
		Kind:       string(ev.Kind),
		CampaignID: ev.CampaignID,
		Actor:      string(ev.Actor),
		Amount:     ev.Amount,
		OccurredAt: ev.OccurredAt,
	})
	if err != nil {
		return amqp091.Publishing{}, err
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    ev.ID.String(),
		Type:         string(ev.Kind),
		Timestamp:    ev.OccurredAt,
		Body:         body,
	}, nil
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}
