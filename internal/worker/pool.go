// Package worker plays independent games on a fixed set of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/match"
)

// WorkItem is one game to play.
type WorkItem struct {
	Index int             // game number, from 0
	Start *chess.Position // owned by the worker that plays it
}

// ProcessResult is a finished game.
type ProcessResult struct {
	Index     int
	Record    *match.Record // partial when Error is set
	Duplicate bool          // an identical game was already played
	Error     error
}

// ProcessFunc plays one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed number of goroutines. Items submitted
// after the pool is stopped, or still queued when it stops, are skipped
// and produce no result.
type Pool struct {
	workers int
	queue   int
	play    ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	skipped atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines; values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result queues; values
// below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.queue = size
		}
	}
}

// NewPool creates a pool with one worker and queues of 10 unless the
// options say otherwise. The pool does nothing until Start.
func NewPool(play ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: 1,
		queue:   10,
		play:    play,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.queue)
	p.results = make(chan ProcessResult, p.queue)
	p.ctx, p.cancel = context.WithCancel(context.Background())
	return p
}

// Start launches the workers. Cancelling ctx stops the pool like Stop.
func (p *Pool) Start(ctx context.Context) {
	p.cancel()
	p.ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()

	for item := range p.items {
		if p.Stopped() {
			p.skipped.Add(1)
			continue
		}
		p.results <- p.play(item)
	}
}

// Submit queues a game, blocking while the queue is full. It returns the
// pool's context error once the pool has stopped.
func (p *Pool) Submit(item WorkItem) error {
	if err := p.ctx.Err(); err != nil {
		return err
	}
	select {
	case p.items <- item:
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// Stop makes the workers skip every game not yet started. Games already
// being played run to completion.
func (p *Pool) Stop() {
	p.cancel()
}

// Stopped reports whether Stop was called or the Start context ended.
func (p *Pool) Stopped() bool {
	return p.ctx.Err() != nil
}

// Close ends submission, waits for the workers and then closes Results.
// Submit must not be called after Close.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results delivers one result per played game, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Skipped returns the number of queued games dropped after a stop.
func (p *Pool) Skipped() int64 {
	return p.skipped.Load()
}
