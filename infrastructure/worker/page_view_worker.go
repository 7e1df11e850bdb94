package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/pkg/logger"
)

// ErrQueueFull is returned by Create when the buffer cannot take another row
var ErrQueueFull = errors.New("page view queue is full")

// PageViewWorker moves page view inserts off the request path. It wraps a
// PageViewRepository: Create only enqueues, every other method goes straight
// to the wrapped repository.
type PageViewWorker struct {
	repositories.PageViewRepository

	queue chan *models.PageView

	// Worker control
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	isRunning bool
	mu        sync.Mutex

	// Configuration
	batchSize     int
	flushInterval time.Duration
	writeTimeout  time.Duration
}

func NewPageViewWorker(repo repositories.PageViewRepository, queueSize, batchSize int, flushInterval time.Duration) *PageViewWorker {
	if queueSize <= 0 {
		queueSize = 1000
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	if flushInterval <= 0 {
		flushInterval = 2 * time.Second
	}
	return &PageViewWorker{
		PageViewRepository: repo,
		queue:              make(chan *models.PageView, queueSize),
		batchSize:          batchSize,
		flushInterval:      flushInterval,
		writeTimeout:       5 * time.Second,
	}
}

// Create enqueues the row. It never blocks; a full queue drops the row.
func (w *PageViewWorker) Create(_ context.Context, view *models.PageView) error {
	select {
	case w.queue <- view:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start starts the writer loop
func (w *PageViewWorker) Start() {
	w.mu.Lock()
	if w.isRunning {
		w.mu.Unlock()
		return
	}
	w.isRunning = true
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run()

	logger.Views("worker_started", "Page view worker started", map[string]interface{}{
		"queue_size": cap(w.queue),
		"batch_size": w.batchSize,
	})
}

// Stop stops the writer and flushes whatever is still queued
func (w *PageViewWorker) Stop() {
	w.mu.Lock()
	if !w.isRunning {
		w.mu.Unlock()
		return
	}
	w.isRunning = false
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
	logger.Views("worker_stopped", "Page view worker stopped", nil)
}

func (w *PageViewWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Pending reports how many rows are waiting to be written
func (w *PageViewWorker) Pending() int {
	return len(w.queue)
}

func (w *PageViewWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	batch := make([]*models.PageView, 0, w.batchSize)

	for {
		select {
		case <-w.ctx.Done():
			batch = w.drain(batch)
			w.flush(batch)
			return
		case view := <-w.queue:
			batch = append(batch, view)
			if len(batch) >= w.batchSize {
				w.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(batch)
				batch = batch[:0]
			}
		}
	}
}

func (w *PageViewWorker) drain(batch []*models.PageView) []*models.PageView {
	for {
		select {
		case view := <-w.queue:
			batch = append(batch, view)
		default:
			return batch
		}
	}
}

// flush uses a fresh context so the final flush still runs after cancel
func (w *PageViewWorker) flush(batch []*models.PageView) {
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.writeTimeout)
	defer cancel()

	failed := 0
	for _, view := range batch {
		if err := w.PageViewRepository.Create(ctx, view); err != nil {
			failed++
			logger.ViewsError("page_view_write_failed", "Failed to write page view", err, map[string]interface{}{
				"type": string(view.ContentType),
				"id":   view.ContentID.String(),
			})
		}
	}

	logger.Debug(logger.CategoryViews, "page_views_flushed", "Page view batch written", map[string]interface{}{
		"count":  len(batch),
		"failed": failed,
	})
}
