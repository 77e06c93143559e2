package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

const (
	RoutingIntakeVerified    = "intake.verified"
	RoutingPackageDispatched = "package.dispatched"
)

// EventPublisher announces committed workflow outcomes. Publishing happens after commit, so a
// failed publish never undoes stock movements.
type EventPublisher interface {
	PublishIntakeVerified(ctx context.Context, msg IntakeVerifiedMessage) error
	PublishPackageDispatched(ctx context.Context, msg PackageDispatchedMessage) error
}

type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

type IntakeVerifiedMessage struct {
	DonationID  uint64          `json:"donation_id"`
	WarehouseID uint64          `json:"warehouse_id"`
	VerifiedBy  string          `json:"verified_by"`
	VerifiedAt  time.Time       `json:"verified_at"`
	Lines       []StockLineInfo `json:"lines"`
}

type PackageDispatchedMessage struct {
	PackageID    uint64          `json:"reliefpkg_id"`
	RequestID    uint64          `json:"reliefrqst_id"`
	DispatchedBy string          `json:"dispatched_by"`
	DispatchedAt time.Time       `json:"dispatched_at"`
	Lines        []StockLineInfo `json:"lines"`
}

type StockLineInfo struct {
	WarehouseID uint64          `json:"warehouse_id"`
	ItemID      uint64          `json:"item_id"`
	BatchID     uint64          `json:"batch_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
}

func NewPublisher(host string, port int, user, password, exchange string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *Publisher) PublishIntakeVerified(ctx context.Context, msg IntakeVerifiedMessage) error {
	return p.publish(ctx, RoutingIntakeVerified, msg)
}

func (p *Publisher) PublishPackageDispatched(ctx context.Context, msg PackageDispatchedMessage) error {
	return p.publish(ctx, RoutingPackageDispatched, msg)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Type:         routingKey,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// Nop is used when the broker is disabled.
type Nop struct{}

func (Nop) PublishIntakeVerified(context.Context, IntakeVerifiedMessage) error { return nil }

func (Nop) PublishPackageDispatched(context.Context, PackageDispatchedMessage) error { return nil }
