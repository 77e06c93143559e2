package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/muhammadheryan/drims/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// StockAuditor compares one (warehouse, item) aggregate with its batches.
type StockAuditor interface {
	Audit(ctx context.Context, warehouseID, itemID uint64) error
}

// Consumer listens for committed stock movements and audits every touched aggregate.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	queue   string
	auditor StockAuditor
	log     *zap.Logger
}

func NewConsumer(host string, port int, user, password, exchange, queue string, auditor StockAuditor) (*Consumer, error) {
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

	err = channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	for _, key := range []string{RoutingIntakeVerified, RoutingPackageDispatched} {
		if err := channel.QueueBind(queue, key, exchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, err
		}
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		queue:   queue,
		auditor: auditor,
		log:     logger.Named("stock-audit"),
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	c.log.Info("consuming", zap.String("queue", c.queue))
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if msg.DeliveryTag == 0 { // channel closed
					return
				}

				err := HandleDelivery(ctx, c.auditor, msg.RoutingKey, msg.Body)
				switch {
				case err == nil:
					msg.Ack(false)
				case isPoison(err):
					c.log.Warn("dropping message", zap.String("routing_key", msg.RoutingKey),
						zap.String("error", err.Error()))
					msg.Ack(false)
				default:
					c.log.Error("audit failed, requeue", zap.String("routing_key", msg.RoutingKey),
						zap.String("error", err.Error()))
					msg.Nack(false, true)
				}
			}
		}
	}()

	return nil
}

type poisonError struct{ err error }

func (e poisonError) Error() string { return e.err.Error() }

func isPoison(err error) bool {
	_, ok := err.(poisonError)
	return ok
}

// HandleDelivery audits every distinct (warehouse, item) a message moved stock in. Undecodable
// messages and unknown routing keys are reported as poison and never retried.
func HandleDelivery(ctx context.Context, auditor StockAuditor, routingKey string, body []byte) error {
	var lines []StockLineInfo
	switch routingKey {
	case RoutingIntakeVerified:
		var m IntakeVerifiedMessage
		if err := json.Unmarshal(body, &m); err != nil {
			return poisonError{err}
		}
		lines = m.Lines
	case RoutingPackageDispatched:
		var m PackageDispatchedMessage
		if err := json.Unmarshal(body, &m); err != nil {
			return poisonError{err}
		}
		lines = m.Lines
	default:
		return poisonError{fmt.Errorf("unexpected routing key %q", routingKey)}
	}

	type key struct{ warehouseID, itemID uint64 }
	seen := make(map[key]bool, len(lines))
	keys := make([]key, 0, len(lines))
	for _, l := range lines {
		k := key{l.WarehouseID, l.ItemID}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].warehouseID != keys[j].warehouseID {
			return keys[i].warehouseID < keys[j].warehouseID
		}
		return keys[i].itemID < keys[j].itemID
	})

	for _, k := range keys {
		if err := auditor.Audit(ctx, k.warehouseID, k.itemID); err != nil {
			return fmt.Errorf("audit warehouse %d item %d: %w", k.warehouseID, k.itemID, err)
		}
	}
	return nil
}

// InternalAPIAuditor runs the audit through the service's internal reconcile endpoint.
type InternalAPIAuditor struct {
	APIURL string
	APIKey string
	Client *http.Client
}

func NewInternalAPIAuditor(apiURL, apiKey string) *InternalAPIAuditor {
	return &InternalAPIAuditor{APIURL: apiURL, APIKey: apiKey, Client: &http.Client{Timeout: 10 * time.Second}}
}

func (a *InternalAPIAuditor) Audit(ctx context.Context, warehouseID, itemID uint64) error {
	url := fmt.Sprintf("%s/internal/warehouses/%d/items/%d/reconcile", a.APIURL, warehouseID, itemID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", a.APIKey))
	req.Header.Set("X-Internal-Service", "stock-audit-consumer")

	resp, err := a.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4xx means the pair is gone or the key is wrong; retrying cannot help.
	if resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	if resp.StatusCode >= 300 {
		logger.Warn("[StockAuditConsumer] reconcile rejected", zap.Int("status", resp.StatusCode),
			zap.Uint64("warehouse_id", warehouseID), zap.Uint64("item_id", itemID))
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
