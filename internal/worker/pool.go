// Package worker drives ingestion: it pulls fetched pages off a queue and
// runs each through the ingester on a bounded set of goroutines.
package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"story_ingest/internal/config"
	"story_ingest/internal/domain"
)

type Ingester interface {
	Ingest(ctx context.Context, req domain.IngestRequest) (*domain.IngestResult, error)
}

type Pool struct {
	ingester    Ingester
	concurrency int
	timeout     time.Duration
	requeue     bool
	logger      *slog.Logger

	mu    sync.Mutex
	stats domain.WorkerStats
}

func NewPool(ingester Ingester, cfg config.WorkerConfig, logger *slog.Logger) *Pool {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pool{
		ingester:    ingester,
		concurrency: concurrency,
		timeout:     cfg.IngestTimeout,
		requeue:     cfg.RequeueOnFailure,
		logger:      logger.With("component", "worker"),
	}
}

// Run processes deliveries until ctx is cancelled or deliveries is closed.
// It returns ctx.Err() in the first case and nil in the second, along with
// the counters for the run.
func (p *Pool) Run(ctx context.Context, deliveries <-chan amqp.Delivery) (*domain.WorkerStats, error) {
	start := time.Now()
	p.logger.Info("worker pool started", "concurrency", p.concurrency)

	var wg sync.WaitGroup
	for i := 0; i < p.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case d, ok := <-deliveries:
					if !ok {
						return
					}
					p.handle(ctx, d)
				}
			}
		}()
	}
	wg.Wait()

	p.mu.Lock()
	stats := p.stats
	p.mu.Unlock()
	stats.Duration = time.Since(start)

	p.logger.Info("worker pool stopped",
		"matched", stats.Matched,
		"created", stats.Created,
		"failed", stats.Failed,
		"rejected", stats.Rejected,
		"duration", stats.Duration,
	)

	return &stats, ctx.Err()
}

func (p *Pool) handle(ctx context.Context, d amqp.Delivery) {
	var req domain.IngestRequest
	if err := json.Unmarshal(d.Body, &req); err != nil || req.URL == "" {
		p.logger.Warn("rejecting malformed ingest request", "delivery_tag", d.DeliveryTag, "error", err)
		_ = d.Reject(false)
		p.count(func(s *domain.WorkerStats) { s.Rejected++ })
		return
	}

	ingestCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ingestCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	result, err := p.ingester.Ingest(ingestCtx, req)
	if err != nil && ctx.Err() != nil {
		// Interrupted by shutdown, not a bad message.
		p.logger.Info("requeueing interrupted ingest", "url", req.URL)
		_ = d.Nack(false, true)
		return
	}
	if err != nil {
		p.logger.Error("ingest failed", "url", req.URL, "error", err)
		_ = d.Nack(false, p.requeue)
		p.count(func(s *domain.WorkerStats) { s.Failed++ })
		return
	}

	if err := d.Ack(false); err != nil {
		p.logger.Warn("ack failed", "url", req.URL, "error", err)
	}

	if result.Created {
		p.count(func(s *domain.WorkerStats) { s.Created++ })
	} else {
		p.count(func(s *domain.WorkerStats) { s.Matched++ })
	}
}

func (p *Pool) count(fn func(*domain.WorkerStats)) {
	p.mu.Lock()
	fn(&p.stats)
	p.mu.Unlock()
}
