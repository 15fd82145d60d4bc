package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/api-sage/bank-ledger-service/internal/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	publishTimeout   = 5 * time.Second
	publishQueueSize = 64
)

// RabbitMQPublisher republishes transfer events to a fanout exchange.
// NotifyTransfer only enqueues: a dedicated goroutine drains the bounded
// queue and talks to the broker, so a stalled broker never holds up transfer
// handling. When the queue is full the event is dropped and logged, publish
// failures are logged, never returned.
type RabbitMQPublisher struct {
	mu       sync.Mutex
	closed   bool
	queue    chan domain.TransferEvent
	done     chan struct{}
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	p := &RabbitMQPublisher{
		queue:    make(chan domain.TransferEvent, publishQueueSize),
		done:     make(chan struct{}),
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}
	go p.publishLoop()

	return p, nil
}

func (p *RabbitMQPublisher) NotifyTransfer(event domain.TransferEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	select {
	case p.queue <- event:
	default:
		logger.Info("rabbitmq notifier dropped transfer event, publish queue full", logger.Fields{
			"eventId":  event.EventID,
			"exchange": p.exchange,
		})
	}
}

// publishLoop is the only goroutine that touches the AMQP channel after
// construction. It exits when Close drains the queue.
func (p *RabbitMQPublisher) publishLoop() {
	defer close(p.done)
	for event := range p.queue {
		p.publish(event)
	}
}

func (p *RabbitMQPublisher) publish(event domain.TransferEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("rabbitmq notifier marshal event failed", err, logger.Fields{
			"eventId": event.EventID,
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   event.EventID,
			Timestamp:   event.CreatedAt,
			Body:        body,
		},
	)
	if err != nil {
		logger.Error("rabbitmq notifier publish failed", err, logger.Fields{
			"eventId":  event.EventID,
			"exchange": p.exchange,
		})
		return
	}

	logger.Info("rabbitmq notifier published transfer event", logger.Fields{
		"eventId":  event.EventID,
		"exchange": p.exchange,
	})
}

// Close stops accepting events, waits for queued events to publish, then
// closes the channel and connection.
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done

	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return fmt.Errorf("close rabbitmq channel: %w", err)
	}
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("close rabbitmq connection: %w", err)
	}

	return nil
}
