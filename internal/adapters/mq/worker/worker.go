// Package worker runs the scoring workers that drain the pair queue and
// write results into the result store.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/quether/talentgap/internal/adapters/mq/queue"
	"github.com/quether/talentgap/internal/domain/model"
	"github.com/quether/talentgap/pkg/logger"
	"github.com/quether/talentgap/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	poolShutdownTimeout     = 30 * time.Second
)

// Scorer computes the gap result for one employee-role pair.
type Scorer interface {
	CalculateGap(employee model.Employee, role model.Role) model.GapResult
}

// Sink receives scored results.
type Sink interface {
	Put(ctx context.Context, result model.GapResult) error
}

// Queue defines how workers receive pairs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Pair
}

// Worker scores pairs off the queue until it drains or the context ends.
type Worker struct {
	queue  Queue
	scorer Scorer
	sink   Sink
	name   string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// New creates a worker with configuration options.
func New(q Queue, scorer Scorer, sink Sink, opts ...Option) *Worker {
	w := &Worker{
		queue:    q,
		scorer:   scorer,
		sink:     sink,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}
	return w
}

// Run consumes pairs until the queue drains, the context is canceled or a
// shutdown is requested.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	pairs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case p, ok := <-pairs:
			if !ok {
				return
			}
			if err := w.processPair(ctx, p); err != nil {
				w.logger.Error(ctx, "pair processing failed", logger.Error(err))
			}
		}
	}
}

// Shutdown stops the worker, waiting for the in-flight pair.
func (w *Worker) Shutdown(ctx context.Context) error {
	close(w.shutdown)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processPair scores one pair and writes the result to the sink.
func (w *Worker) processPair(ctx context.Context, p queue.Pair) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	scoreStart := time.Now()
	result := w.scorer.CalculateGap(p.Employee, p.Role)
	metrics.RecordScoringLatency(float64(time.Since(scoreStart).Milliseconds()))
	metrics.RecordPairScored()
	metrics.RecordBandResult(string(result.Band))

	if err := w.sink.Put(ctx, result); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "store_error")
		w.logger.Error(ctx, "result store write failed",
			logger.String("employee_id", p.Employee.ID),
			logger.String("role_id", p.Role.ID),
			logger.Error(err),
		)
		return fmt.Errorf("store result for %s/%s: %w", p.Employee.ID, p.Role.ID, err)
	}
	return nil
}

// Pool manages a set of workers draining one queue.
type Pool struct {
	workers []*Worker
	queue   Queue

	shutdown chan struct{}

	logger logger.Logger
}

// NewPool creates a worker pool. A non-positive count defaults to a multiple
// of the CPU count.
func NewPool(workerCount int, q Queue, scorer Scorer, sink Sink) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers:  make([]*Worker, workerCount),
		queue:    q,
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("worker-pool"),
	}
	for i := 0; i < workerCount; i++ {
		pool.workers[i] = New(q, scorer, sink, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerActiveCount(workerCount)
	return pool
}

// Start launches all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Wait blocks until every worker has finished. Workers finish when the queue
// closes and drains, so the usual sequence is enqueue everything, close the
// queue, then Wait.
func (p *Pool) Wait() {
	for _, w := range p.workers {
		<-w.done
	}
	metrics.UpdateWorkerActiveCount(0)
}

// Shutdown stops the pool without waiting for the queue to drain.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "queue close failed", logger.Error(err))
		}
	}

	close(p.shutdown)
	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}
	metrics.UpdateWorkerActiveCount(0)
	return nil
}
