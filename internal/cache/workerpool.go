package cache

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrPoolFull   = errors.New("refresh queue is full")
	ErrPoolClosed = errors.New("refresh queue is closed")
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	TryAddTask(task Task) error
	Wait() error
	Close()
}

type Task func() error

// maxKeptErrors bounds the errors held for the next Wait; older ones are
// dropped once it is reached.
const maxKeptErrors = 32

// WorkerPool runs background refreshes. Every accepted task is tracked until
// it finishes; Wait joins them and hands back the errors they returned.
type WorkerPool struct {
	pool    chan Task
	pending sync.WaitGroup

	closeMu sync.RWMutex
	closed  bool

	errMu sync.Mutex
	errs  []error
}

func NewWorkerPool(size int) *WorkerPool {
	pool := make(chan Task, size)
	wp := &WorkerPool{pool: pool}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
			wp.keep(err)
		}
		wp.pending.Done()
	}
}

func (wp *WorkerPool) keep(err error) {
	wp.errMu.Lock()
	defer wp.errMu.Unlock()
	if len(wp.errs) == maxKeptErrors {
		wp.errs = append(wp.errs[:0], wp.errs[1:]...)
	}
	wp.errs = append(wp.errs, err)
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.closeMu.RLock()
	defer wp.closeMu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	wp.pending.Add(1)
	select {
	case <-ctx.Done():
		wp.pending.Done()
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// TryAddTask enqueues without blocking.
func (wp *WorkerPool) TryAddTask(task Task) error {
	wp.closeMu.RLock()
	defer wp.closeMu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	wp.pending.Add(1)
	select {
	case wp.pool <- task:
		return nil
	default:
		wp.pending.Done()
		return ErrPoolFull
	}
}

// Wait blocks until every accepted task has finished and returns the errors
// kept since the previous call, joined.
func (wp *WorkerPool) Wait() error {
	wp.pending.Wait()

	wp.errMu.Lock()
	defer wp.errMu.Unlock()
	err := errors.Join(wp.errs...)
	wp.errs = nil
	return err
}

func (wp *WorkerPool) Close() {
	wp.closeMu.Lock()
	defer wp.closeMu.Unlock()
	if wp.closed {
		return
	}
	wp.closed = true
	close(wp.pool)
}
