package worker

import (
	"context"
	"sync"

	"github.com/osse101/MarketBot_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}

	stopOnce sync.Once
}

// NewPool creates a new worker pool. Non-positive sizes fall back to defaults.
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			// finish whatever is already queued
			for {
				select {
				case job := <-p.jobQueue:
					p.run(job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultJobTimeout)
	defer cancel()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while it is full
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// TryEnqueue adds a job without blocking. It returns false and drops the job
// when the queue is full or the pool is stopping.
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.Warn(LogMsgJobDropped, "queue_size", cap(p.jobQueue))
		return false
	}
}

// Stop stops the workers after the queued jobs finish and waits for them.
// Safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
		logger.Debug(LogMsgPoolStopped)
	})
}
