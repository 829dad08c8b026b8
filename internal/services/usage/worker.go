package usage

import (
	"context"
	"sync"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

const recordTimeout = 5 * time.Second

// Recorder accepts resolution log entries without blocking the caller.
type Recorder interface {
	Submit(params models.RecordResolutionParams)
}

// Worker writes resolution records from a bounded queue on a fixed pool of
// goroutines. When the queue is full new records are dropped.
type Worker struct {
	service  *Service
	tasks    chan models.RecordResolutionParams
	wg       sync.WaitGroup
	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

// NewWorker starts poolSize goroutines draining a queue of bufferSize.
func NewWorker(service *Service, poolSize, bufferSize int) *Worker {
	w := &Worker{
		service: service,
		tasks:   make(chan models.RecordResolutionParams, bufferSize),
	}

	for range poolSize {
		w.wg.Add(1)
		go w.run()
	}

	return w
}

// Submit queues a record.
func (w *Worker) Submit(params models.RecordResolutionParams) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		fiberlog.Warnf("[%s] Resolution worker stopped, dropping record", params.RequestID)
		return
	}

	select {
	case w.tasks <- params:
	default:
		fiberlog.Warnf("[%s] Resolution log buffer full, dropping record", params.RequestID)
	}
}

func (w *Worker) run() {
	defer w.wg.Done()

	for params := range w.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		if _, err := w.service.RecordResolution(ctx, params); err != nil {
			fiberlog.Errorf("[%s] Failed to record resolution: %v", params.RequestID, err)
		}
		cancel()
	}
}

// Stop drains queued records and waits for the pool to exit.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.stopped = true
		close(w.tasks)
		w.mu.Unlock()
		w.wg.Wait()
	})
}
