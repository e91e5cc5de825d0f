// Package intake consumes raw lead submissions from a Redis list, normalizes
// them and hands them to storage. Producers push JSON envelopes with a source
// and the raw payload; everything else is derived here.
package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/leadflowhq/leadflow/pkg/events"
	"github.com/leadflowhq/leadflow/pkg/eventbus"
	"github.com/leadflowhq/leadflow/pkg/lead"
	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/persistence"
)

const defaultQueue = "leadflow:intake"

// Envelope is the wire format producers push onto the intake queue.
type Envelope struct {
	Source  string         `json:"source"`
	Payload map[string]any `json:"payload"`
	Tags    []string       `json:"tags,omitempty"`
}

// Consumer pops lead envelopes off a Redis list with BLPOP.
type Consumer struct {
	Queue      string
	Connection map[string]string

	client      redis.UniversalClient
	persistence persistence.Persistence
	publisher   eventbus.EventPublisher
	logger      *slog.Logger
	stopCh      chan struct{}
	wg          sync.WaitGroup
}

// NewConsumer creates an intake consumer. The connection map accepts addr,
// password and db keys; missing values fall back to a local Redis.
func NewConsumer(queue string, connection map[string]string, store persistence.Persistence, publisher eventbus.EventPublisher, logger *slog.Logger) *Consumer {
	if queue == "" {
		queue = defaultQueue
	}

	if connection == nil {
		connection = make(map[string]string)
	}

	return &Consumer{
		Queue:       queue,
		Connection:  connection,
		persistence: store,
		publisher:   publisher,
		stopCh:      make(chan struct{}),
		logger: logger.With(
			"module", "lead_intake",
			"queue", queue,
		),
	}
}

// Start connects to Redis and begins consuming. It returns after the
// connection is established; consumption runs in the background until Stop
// or context cancellation.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.InfoContext(ctx, "Starting lead intake consumer")

	err := c.initializeClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize intake client: %w", err)
	}

	c.wg.Add(1)

	go c.consume(ctx)

	return nil
}

func (c *Consumer) initializeClient(ctx context.Context) error {
	addr := c.Connection["addr"]
	if addr == "" {
		addr = "localhost:6379"
	}

	password := c.Connection["password"]
	db := 0

	if dbStr := c.Connection["db"]; dbStr != "" {
		var err error
		if db, err = c.parseDB(dbStr); err != nil {
			return fmt.Errorf("invalid db value: %w", err)
		}
	}

	c.client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := c.client.Ping(ctx).Err()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	c.logger.InfoContext(ctx, "Connected to Redis", "addr", addr, "db", db)

	return nil
}

func (c *Consumer) parseDB(dbStr string) (int, error) {
	var db int

	_, err := fmt.Sscanf(dbStr, "%d", &db)

	return db, err
}

func (c *Consumer) consume(ctx context.Context) {
	defer c.wg.Done()

	c.logger.InfoContext(ctx, "Starting intake queue consumer")

	for {
		select {
		case <-c.stopCh:
			c.logger.InfoContext(ctx, "Intake consumer stopped")

			return
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "Context cancelled, stopping intake consumer")

			return
		default:
			err := c.processMessage(ctx)
			if err != nil {
				c.logger.ErrorContext(ctx, "Error processing intake message", "error", err)
				time.Sleep(1 * time.Second)
			}
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context) error {
	result, err := c.client.BLPop(ctx, 1*time.Second, c.Queue).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}

		return fmt.Errorf("failed to pop message from queue: %w", err)
	}

	if len(result) < 2 {
		return nil
	}

	return c.Ingest(ctx, []byte(result[1]))
}

// Ingest normalizes one raw envelope and stores the resulting lead. Split
// from the consume loop so the HTTP API can reuse the same path.
func (c *Consumer) Ingest(ctx context.Context, message []byte) error {
	var envelope Envelope
	if err := json.Unmarshal(message, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal intake envelope: %w", err)
	}

	normalized := lead.Normalize(models.LeadSource(envelope.Source), envelope.Payload)
	if len(envelope.Tags) > 0 {
		normalized.Tags = lead.MergeTags(normalized.Tags, envelope.Tags)
	}

	if err := c.persistence.SaveLead(ctx, normalized); err != nil {
		return persistence.NewLeadError("Ingest", normalized.ID, err)
	}

	c.logger.InfoContext(ctx, "Lead ingested",
		"lead_id", normalized.ID,
		"source", normalized.Source,
		"tags", normalized.Tags,
	)

	if c.publisher != nil {
		event := events.LeadReceived{
			BaseEvent: events.NewBaseEvent(events.LeadReceivedEvent),
			LeadID:    normalized.ID,
			Source:    normalized.Source,
			Tags:      normalized.Tags,
		}

		if err := c.publisher.Publish(ctx, normalized.ID, event); err != nil {
			c.logger.ErrorContext(ctx, "Failed to publish lead.received event", "error", err, "lead_id", normalized.ID)
		}
	}

	return nil
}

// Stop drains the consumer and closes the Redis connection.
func (c *Consumer) Stop(ctx context.Context) error {
	c.logger.InfoContext(ctx, "Stopping lead intake consumer")

	close(c.stopCh)
	c.wg.Wait()

	if c.client != nil {
		err := c.client.Close()
		if err != nil {
			c.logger.ErrorContext(ctx, "Error closing Redis client", "error", err)
		}
	}

	return nil
}
