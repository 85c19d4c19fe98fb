package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vytor/vocabflash/internal/logger"
)

type Job interface {
	Run(context.Context) error
	Name() string
}

// Func adapts a named function to Job.
type Func struct {
	JobName string
	Fn      func(context.Context) error
}

func (f Func) Run(ctx context.Context) error { return f.Fn(ctx) }
func (f Func) Name() string                  { return f.JobName }

// Pool runs submitted jobs on a fixed number of goroutines.
type Pool struct {
	jobs     chan Job
	wg       sync.WaitGroup
	workers  int
	queue    int
	failures atomic.Int64
	log      *logger.Logger
}

func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Pool{
		jobs:    make(chan Job, queueSize),
		workers: workers,
		queue:   queueSize,
		log:     logger.Default().WithPrefix("worker-pool"),
	}
}

// Start launches the workers. Jobs still queued once ctx is done are skipped.
func (p *Pool) Start(ctx context.Context) {
	p.log = logger.FromContext(ctx).WithPrefix("worker-pool")
	p.log.Debug("starting worker pool with %d workers and queue size %d", p.workers, p.queue)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			workerLog := p.log.WithField("worker_id", id)

			for job := range p.jobs {
				jobLog := workerLog.WithField("job", job.Name())
				if err := ctx.Err(); err != nil {
					p.failures.Add(1)
					jobLog.Debug("skipping job: %v", err)
					continue
				}

				start := time.Now()
				if err := job.Run(logger.NewContext(ctx, jobLog)); err != nil {
					p.failures.Add(1)
					jobLog.Warn("job failed after %v: %v", time.Since(start), err)
					continue
				}
				jobLog.Debug("job completed in %v", time.Since(start))
			}
		}(i + 1)
	}
}

// Stop waits for every submitted job, then releases the workers.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
	p.log.Debug("worker pool stopped, %d failed jobs", p.failures.Load())
}

// Submit queues job, blocking while the queue is full.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Failures returns how many jobs failed or were skipped.
func (p *Pool) Failures() int {
	return int(p.failures.Load())
}
