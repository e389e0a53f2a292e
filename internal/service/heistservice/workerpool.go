package heistservice

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var errPoolClosed = errors.New("worker pool is closed")

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool bounds how many heist transitions run at once so a burst of
// expiring deadlines cannot exhaust the connection pool.
type WorkerPool struct {
	pool chan Task
	done chan struct{}
	once sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{
		pool: make(chan Task, size),
		done: make(chan struct{}),
	}
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case <-wp.done:
			return
		case task := <-wp.pool:
			if err := task(); err != nil {
				zap.L().Error("heist transition failed", zap.Error(err))
			}
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-wp.done:
		return errPoolClosed
	default:
	}
	select {
	case <-wp.done:
		return errPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Close stops the workers. Queued tasks that have not started are dropped;
// their transitions are recovered by the rescan on the next start.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() { close(wp.done) })
}
