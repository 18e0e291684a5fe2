// Package parallel provides a bounded worker pool for fanning independent
// analysis runs out across goroutines. Tasks are plain closures; result
// collection and error handling stay with the caller.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Pool runs submitted tasks on a fixed set of worker goroutines.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// NewPool starts a pool with the given number of workers; a non-positive
// count defaults to GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{tasks: make(chan func(), workers)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Submit enqueues a task, blocking while all workers are busy and the queue
// is full. It returns early with the context error if ctx is cancelled before
// the task is accepted; an accepted task always runs.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.tasks <- task:
		return nil
	}
}

// Wait closes the queue and blocks until every accepted task has finished.
// The pool cannot be reused afterward.
func (p *Pool) Wait() {
	p.once.Do(func() { close(p.tasks) })
	p.wg.Wait()
}
