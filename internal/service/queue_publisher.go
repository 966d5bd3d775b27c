// Package service publishes activity events to RabbitMQ.  Publishing is
// best effort: failures are logged and returned, and a circuit breaker stops
// request handlers from paying a dial timeout while the broker is down.
package service

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/queue"
)

const dialTimeout = 2 * time.Second

// EventPublisher is what handlers depend on.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.ActivityEvent) error
}

// Publisher sends events to the activity queue on the default exchange.
type Publisher struct {
	url  string
	cb   *gobreaker.CircuitBreaker[struct{}]
	send func(ctx context.Context, body []byte) error
	now  func() time.Time
}

// NewPublisher returns a publisher for the broker at url.  After three
// consecutive failures the breaker opens for 30 seconds.
func NewPublisher(url string) *Publisher {
	p := &Publisher{url: url, now: time.Now}
	p.send = p.publish
	p.cb = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "rabbitmq-publisher",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("publisher circuit breaker state changed")
		},
	})
	return p
}

// Publish stamps ev with the current time when unset and sends it.
func (p *Publisher) Publish(ctx context.Context, ev queue.ActivityEvent) error {
	if ev.OccurredAt == "" {
		ev.OccurredAt = p.now().UTC().Format(time.RFC3339)
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = p.cb.Execute(func() (struct{}, error) {
		return struct{}{}, p.send(ctx, body)
	})
	if err != nil {
		logging.Warn().Err(err).Str("event", string(ev.Type)).Msg("rabbitmq: publish failed")
	}
	return err
}

// publish opens a connection per event, as traffic is a handful of writes.
func (p *Publisher) publish(ctx context.Context, body []byte) error {
	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue.ActivityQueueName, true, false, false, false, nil); err != nil {
		return err
	}
	return ch.PublishWithContext(ctx, "", queue.ActivityQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Body:         body,
	})
}

// Noop discards events.  It is used when EVENTS_ENABLED is false.
type Noop struct{}

func (Noop) Publish(context.Context, queue.ActivityEvent) error { return nil }
