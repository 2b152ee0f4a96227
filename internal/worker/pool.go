// Package worker runs dictionary lookups concurrently under a per-host rate limit.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is what a Job produces
type Result interface {
	GetError() error
}

type queuedJob struct {
	index int
	job   Job
}

// Pool executes jobs on a fixed number of goroutines. Results are returned
// in submission order regardless of completion order.
type Pool struct {
	workers int
	queue   chan queuedJob
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc

	mu        sync.Mutex
	results   []Result
	submitted int
}

// NewPool creates a pool bound to ctx; workers <= 0 means one worker
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers: workers,
		queue:   make(chan queuedJob, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case qj, ok := <-p.queue:
			if !ok {
				return
			}
			res := qj.job.Execute(p.ctx)
			p.mu.Lock()
			p.results[qj.index] = res
			p.mu.Unlock()
		}
	}
}

// Submit queues a job. It reports false if the pool was cancelled first.
func (p *Pool) Submit(job Job) bool {
	p.mu.Lock()
	index := p.submitted
	p.submitted++
	p.results = append(p.results, nil)
	p.mu.Unlock()

	select {
	case <-p.ctx.Done():
		return false
	case p.queue <- queuedJob{index: index, job: job}:
		return true
	}
}

// Wait closes the queue, waits for the workers, and returns one slot per
// submitted job. Jobs that never ran leave a nil slot.
func (p *Pool) Wait() []Result {
	close(p.queue)
	p.wg.Wait()
	p.cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}
