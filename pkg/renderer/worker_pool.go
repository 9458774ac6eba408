package renderer

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// RowTask represents one image row to be rendered by the worker pool
type RowTask struct {
	Row  int   // Row index, 0 is the top of the image
	Seed int64 // Seed for the row's private random generator
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row      int
	Pixels   []core.Vec3 // Averaged linear colors, left to right
	Samples  int         // Camera samples taken for the row
	WorkerID int
	Duration time.Duration
	Error    error
}

// RowRenderFunc renders a single row with the given sampler
type RowRenderFunc func(row int, sampler core.Sampler) ([]core.Vec3, int)

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	render      RowRenderFunc
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the queues so that submitting every row never blocks.
func NewWorkerPool(render RowRenderFunc, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			render:      render,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Tasks picked up after ctx is done report ctx.Err().
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- RowResult{Row: task.Row, WorkerID: w.ID, Error: err}
			continue
		}

		start := time.Now()
		// Each row owns its generator, so output does not depend on scheduling
		sampler := core.NewSeededSampler(task.Seed)
		pixels, samples := w.render(task.Row, sampler)

		w.resultQueue <- RowResult{
			Row:      task.Row,
			Pixels:   pixels,
			Samples:  samples,
			WorkerID: w.ID,
			Duration: time.Since(start),
		}
	}
}
