package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

const (
	taskQueueSize     = 256
	workerIdleTimeout = 1 * time.Second
)

// WorkerPool runs render tasks on a bounded set of reusable goroutines.
// Wait is the single join point for everything submitted before it.
// Workers live until Stop.
type WorkerPool struct {
	pool       worker.DynamicWorkerPool
	numWorkers int

	wg     sync.WaitGroup
	mu     sync.Mutex
	nextID int
	err    error // first task error since the last Wait

	stopOnce sync.Once
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		pool:       worker.NewDynamicWorkerPool(numWorkers, taskQueueSize, workerIdleTimeout),
		numWorkers: numWorkers,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Submit queues fn for execution on one of the workers
func (wp *WorkerPool) Submit(fn func() error) {
	wp.mu.Lock()
	id := wp.nextID
	wp.nextID++
	wp.mu.Unlock()

	wp.wg.Add(1)
	wp.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer wp.wg.Done()
			if err := fn(); err != nil {
				wp.mu.Lock()
				if wp.err == nil {
					wp.err = err
				}
				wp.mu.Unlock()
			}
			return nil, nil
		},
	})
}

// Wait blocks until every submitted task has finished and returns the first
// error any of them reported
func (wp *WorkerPool) Wait() error {
	wp.wg.Wait()

	wp.mu.Lock()
	defer wp.mu.Unlock()
	err := wp.err
	wp.err = nil
	return err
}

// Stop shuts down the workers. It is safe to call more than once; the pool
// must not be used afterwards.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(wp.pool.Stop)
}
