// Package adapters provides infrastructure adapters for the patient
// data service.
package adapters

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// publishTimeout bounds how long Publish waits on a full queue.
const publishTimeout = 2 * time.Second

// queueBufferSize is the per-queue channel buffer.
const queueBufferSize = 100

// JobHandler processes a single message taken from a queue.
type JobHandler func(ctx context.Context, data []byte) error

// QueueAdapter defines the interface for queue interactions.
type QueueAdapter interface {
	// Publish sends a message to the named queue.
	Publish(ctx context.Context, queueName string, jobData []byte) error
	// StartConsuming runs handler for every message on the named queue
	// in a background goroutine until the queue or adapter stops.
	StartConsuming(ctx context.Context, queueName string, handler JobHandler) error
	// StopConsuming stops the consumer of the named queue.
	StopConsuming(ctx context.Context, queueName string) error
	// Close stops all consumers and waits for them to finish.
	Close() error
}

// InMemoryQueueAdapter implements QueueAdapter with buffered channels.
// Suitable for a single-process deployment; a broker-backed adapter can
// replace it behind the same interface.
type InMemoryQueueAdapter struct {
	queues      map[string]chan []byte
	stopChans   map[string]chan struct{}
	mu          sync.RWMutex
	wg          sync.WaitGroup
	consumerCtx context.Context
	cancel      context.CancelFunc
	logger      zerolog.Logger
}

// NewInMemoryQueueAdapter creates a new in-memory queue adapter.
func NewInMemoryQueueAdapter(logger zerolog.Logger) *InMemoryQueueAdapter {
	ctx, cancel := context.WithCancel(context.Background())
	return &InMemoryQueueAdapter{
		queues:      make(map[string]chan []byte),
		stopChans:   make(map[string]chan struct{}),
		consumerCtx: ctx,
		cancel:      cancel,
		logger:      logger,
	}
}

func (q *InMemoryQueueAdapter) getOrCreateQueue(queueName string) chan []byte {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.queues[queueName]; !ok {
		q.queues[queueName] = make(chan []byte, queueBufferSize)
		q.stopChans[queueName] = make(chan struct{})
		q.logger.Debug().Str("queue", queueName).Msg("In-memory queue created")
	}
	return q.queues[queueName]
}

// Publish sends a message to the named in-memory queue. It fails if the
// queue stays full past the publish timeout.
func (q *InMemoryQueueAdapter) Publish(ctx context.Context, queueName string, jobData []byte) error {
	queue := q.getOrCreateQueue(queueName)
	select {
	case queue <- jobData:
		q.logger.Debug().Str("queue", queueName).Int("depth", len(queue)).Msg("Message published")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishTimeout):
		return fmt.Errorf("timeout publishing to queue %s", queueName)
	}
}

// StartConsuming starts a background consumer for the named queue.
func (q *InMemoryQueueAdapter) StartConsuming(ctx context.Context, queueName string, handler JobHandler) error {
	queue := q.getOrCreateQueue(queueName)

	q.mu.RLock()
	stop := q.stopChans[queueName]
	q.mu.RUnlock()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.logger.Info().Str("queue", queueName).Msg("Consumer started")
		for {
			select {
			case data, ok := <-queue:
				if !ok {
					return
				}
				if err := handler(q.consumerCtx, data); err != nil {
					q.logger.Error().Err(err).Str("queue", queueName).Msg("Job handler failed")
				}
			case <-stop:
				q.logger.Info().Str("queue", queueName).Msg("Consumer stopped")
				return
			case <-q.consumerCtx.Done():
				q.logger.Info().Str("queue", queueName).Msg("Consumer stopped by adapter shutdown")
				return
			}
		}
	}()
	return nil
}

// StopConsuming signals the consumer of the named queue to stop.
func (q *InMemoryQueueAdapter) StopConsuming(ctx context.Context, queueName string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if stop, ok := q.stopChans[queueName]; ok {
		close(stop)
		delete(q.stopChans, queueName)
	}
	return nil
}

// Close stops every consumer and waits for them to exit.
func (q *InMemoryQueueAdapter) Close() error {
	q.cancel()
	q.wg.Wait()
	return nil
}
