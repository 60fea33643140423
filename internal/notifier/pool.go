package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jobdeck/jobdeck/internal/notifier/domain"
)

// spawnWorkerPool spawns N worker goroutines based on concurrency configuration
func (n *Notifier) spawnWorkerPool(ctx context.Context) {
	n.logger.Info("Spawning worker pool",
		slog.Int("concurrency", n.concurrency),
		slog.String("notifier_id", n.notifierID),
	)

	for i := 0; i < n.concurrency; i++ {
		n.wg.Add(1)
		go n.workerLoop(ctx, i)
	}
}

// workerLoop is the main processing loop for each worker goroutine
func (n *Notifier) workerLoop(ctx context.Context, workerNum int) {
	defer n.wg.Done()

	workerName := fmt.Sprintf("%s-%d", n.notifierID, workerNum)
	n.logger.Info("Worker goroutine started",
		slog.String("worker_name", workerName),
	)

	for {
		select {
		case <-n.stopChan:
			n.logger.Info("Worker goroutine stopping - stopChan closed",
				slog.String("worker_name", workerName),
			)
			return

		case <-ctx.Done():
			n.logger.Info("Worker goroutine stopping - context canceled",
				slog.String("worker_name", workerName),
			)
			return

		case msg, ok := <-n.eventsChan:
			if !ok {
				return
			}

			err := n.processEvent(ctx, msg)

			channel := n.rabbitClient.GetChannel()
			if channel == nil {
				n.logger.Error("Failed to get RabbitMQ channel for ACK/NACK",
					slog.String("worker_name", workerName),
					slog.String("event", msg.Event),
				)
				continue
			}

			if err != nil {
				n.logger.Error("Event processing failed",
					slog.String("worker_name", workerName),
					slog.String("event", msg.Event),
					slog.String("error", err.Error()),
				)

				requeue := shouldRequeueEvent(err)
				if nackErr := channel.Nack(msg.DeliveryTag, false, requeue); nackErr != nil {
					n.logger.Error("Failed to NACK event",
						slog.String("worker_name", workerName),
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			if ackErr := channel.Ack(msg.DeliveryTag, false); ackErr != nil {
				n.logger.Error("Failed to ACK event",
					slog.String("worker_name", workerName),
					slog.String("error", ackErr.Error()),
				)
			}
		}
	}
}

// shouldRequeueEvent determines if an event should be requeued based on
// the error type. Only transient failures are worth retrying; events
// referencing rows that no longer exist never will.
func shouldRequeueEvent(err error) bool {
	if errors.Is(err, domain.ErrApplicationNotFound) ||
		errors.Is(err, domain.ErrJobNotFound) ||
		errors.Is(err, domain.ErrUnknownEvent) {
		return false
	}

	var retryableErr *domain.RetryableError
	return errors.As(err, &retryableErr)
}
