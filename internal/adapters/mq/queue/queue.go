// Package queue carries employee-role pairs from the pair generator to the
// scoring workers. The in-memory bounded queue is the only implementation;
// the interface keeps the workers decoupled from it.
package queue

import (
	"context"
	"sync"

	"github.com/quether/talentgap/internal/domain/model"
	"github.com/quether/talentgap/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultQueueCapacity = 4096
	defaultBufferSize    = 4096
)

// Pair is one employee-role combination awaiting scoring.
type Pair struct {
	Employee model.Employee
	Role     model.Role
}

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a pair to the queue.
	// Returns false if the queue is full or closed and the pair was dropped.
	Enqueue(ctx context.Context, p Pair) bool

	// Dequeue returns a channel receiving pairs as they become available.
	// The channel closes when the queue closes and drains.
	Dequeue(ctx context.Context) <-chan Pair

	// Len returns the current number of queued pairs.
	Len(ctx context.Context) int

	// Close stops accepting pairs. Already-queued pairs still drain.
	Close() error

	// IsClosed reports whether the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue on a buffered channel.
type InMemoryQueue struct {
	pairs      chan Pair
	capacity   int
	bufferSize int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryQueue creates an in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity:   defaultQueueCapacity,
		bufferSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.pairs = make(chan Pair, q.bufferSize)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)
	metrics.UpdateQueueUtilization(0)
	return q
}

// Enqueue adds a pair to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, p Pair) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "closed")
		return false
	}
	if len(q.pairs) >= q.capacity {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "capacity_exceeded")
		return false
	}

	select {
	case q.pairs <- p:
		metrics.RecordQueueEnqueue()
		size := len(q.pairs)
		metrics.UpdateQueueSize(size)
		metrics.UpdateQueueUtilization(float64(size) / float64(q.capacity))
		return true
	case <-ctx.Done():
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "context_cancelled")
		return false
	default:
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "queue_full")
		return false
	}
}

// Dequeue returns a channel receiving pairs as they become available.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan Pair {
	out := make(chan Pair)
	go func() {
		defer close(out)
		for p := range q.pairs {
			select {
			case out <- p:
				metrics.RecordQueueDequeue()
				size := len(q.pairs)
				metrics.UpdateQueueSize(size)
				metrics.UpdateQueueUtilization(float64(size) / float64(q.capacity))
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of queued pairs.
func (q *InMemoryQueue) Len(ctx context.Context) int {
	size := len(q.pairs)
	metrics.UpdateQueueSize(size)
	metrics.UpdateQueueUtilization(float64(size) / float64(q.capacity))
	return size
}

// Close stops accepting pairs. Already-queued pairs still drain.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.pairs)
	q.closed = true
	return nil
}

// IsClosed reports whether the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
