// Package parallel runs independent tasks on a fixed set of workers.
package parallel

import (
	"errors"
	"runtime"
	"sync"
)

type Task func() error

// Pool runs tasks submitted with Go. With a single worker tasks run inline
// on the submitting goroutine.
type Pool struct {
	wg    sync.WaitGroup
	work  chan Task
	close func()

	mu   sync.Mutex
	errs []error
}

// Start launches numWorkers workers, or GOMAXPROCS workers if numWorkers < 1.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan Task, numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for task := range pool.work {
				pool.run(task)
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

// Go submits a task. It must not be called after Wait.
func (p *Pool) Go(task Task) {
	if p.work == nil {
		p.run(task)
		return
	}
	p.work <- task
}

// Wait stops accepting tasks, waits for the submitted ones and returns their
// errors joined. It is safe to call more than once.
func (p *Pool) Wait() error {
	p.close()
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}

func (p *Pool) run(task Task) {
	if err := task(); err != nil {
		p.mu.Lock()
		p.errs = append(p.errs, err)
		p.mu.Unlock()
	}
}
