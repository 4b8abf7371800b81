// worker/pool.go
package worker

import "sync"

// Job produces one value. Jobs carry their own error inside T when the
// caller needs per-job failure (all-settled semantics).
type Job[T any] func() T

type Result[T any] struct {
	JobID  string
	Output T
}

// Pool fans a fixed batch of named jobs out over workerCount goroutines.
// Unlike a long-lived server pool, a Pool is created per batch and joined
// with Wait: every job completes and reports, none can fail the batch.
type Pool[T any] struct {
	workers int
	jobs    chan jobWrapper[T]
	results chan Result[T]
	wg      sync.WaitGroup
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

func NewPool[T any](workerCount, batchSize int) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool[T]{
		workers: workerCount,
		jobs:    make(chan jobWrapper[T], batchSize),
		results: make(chan Result[T], batchSize),
	}

	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- Result[T]{
			JobID:  job.id,
			Output: job.fn(),
		}
	}
}

func (p *Pool[T]) Submit(id string, fn Job[T]) {
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
}

// Wait closes the job feed, waits for the workers to drain it and returns
// every result keyed by job ID.
func (p *Pool[T]) Wait() map[string]T {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)

	out := make(map[string]T)
	for r := range p.results {
		out[r.JobID] = r.Output
	}
	return out
}

// Gather is the one-shot convenience: run all jobs, join, return outputs.
func Gather[T any](workerCount int, jobs map[string]Job[T]) map[string]T {
	p := NewPool[T](workerCount, len(jobs))
	for id, fn := range jobs {
		p.Submit(id, fn)
	}
	return p.Wait()
}
