// Package notifier consumes job-board events from RabbitMQ and records
// notifications for job posters. Deliveries are acked manually; only
// transient failures are requeued.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/notifier/domain"
	"github.com/jobdeck/jobdeck/internal/notifier/storage"
	"github.com/jobdeck/jobdeck/shared/postgresql"
	"github.com/jobdeck/jobdeck/shared/rabbitmq"
)

// Config holds notifier configuration
type Config struct {
	Logger        *slog.Logger
	DBClient      *postgresql.Client
	RabbitClient  *rabbitmq.Client
	Concurrency   int
	PrefetchCount int
}

// Notifier consumes events and fans them out as notifications
type Notifier struct {
	logger        *slog.Logger
	rabbitClient  *rabbitmq.Client
	storage       *storage.Storage
	notifierID    string
	concurrency   int
	prefetchCount int
	eventsChan    chan *domain.EventMessage
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

// New creates a new Notifier instance
func New(cfg *Config) *Notifier {
	return &Notifier{
		logger:        cfg.Logger,
		rabbitClient:  cfg.RabbitClient,
		storage:       storage.NewStorage(cfg.DBClient.GetDB(), cfg.Logger),
		notifierID:    fmt.Sprintf("notifier-%s", uuid.New().String()[:8]),
		concurrency:   cfg.Concurrency,
		prefetchCount: cfg.PrefetchCount,
		eventsChan:    make(chan *domain.EventMessage),
		stopChan:      make(chan struct{}),
	}
}

// Start subscribes to the event queue and blocks dispatching deliveries
// to the worker pool until the context is canceled.
func (n *Notifier) Start(ctx context.Context) error {
	n.logger.Info("Starting notifier",
		slog.String("notifier_id", n.notifierID),
		slog.Int("concurrency", n.concurrency),
		slog.Int("prefetch_count", n.prefetchCount),
	)

	deliveries, err := n.setupConsumer()
	if err != nil {
		return fmt.Errorf("failed to setup consumer: %w", err)
	}

	n.spawnWorkerPool(ctx)
	n.dispatchDeliveries(ctx, deliveries)

	return nil
}

// Stop gracefully stops the notifier
func (n *Notifier) Stop() {
	n.logger.Info("Stopping notifier...")
	close(n.stopChan)
	n.wg.Wait()
	n.logger.Info("Notifier stopped")
}
