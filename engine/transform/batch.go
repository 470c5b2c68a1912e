package transform

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Batch derives model and normal matrices for many transforms in parallel.
// Work is split into fixed-size chunks that are submitted to a worker pool reused across
// calls, and each call blocks until every chunk has been written.
type Batch interface {
	// Compute returns the matrices of each transform, in input order.
	//
	// Parameters:
	//   - ts: the transforms to evaluate
	//
	// Returns:
	//   - []Matrices: one entry per transform
	Compute(ts []Transform) []Matrices

	// Workers returns the maximum number of workers used by the batch.
	Workers() int

	// ChunkSize returns the number of transforms evaluated per task.
	ChunkSize() int

	// Release stops the worker pool. The batch must not be used afterwards.
	Release()
}

type batchImpl struct {
	workers   int
	chunkSize int
	pool      worker.DynamicWorkerPool
}

var _ Batch = &batchImpl{}

// NewBatch creates a Batch backed by a worker pool.
// Defaults to runtime.NumCPU()-1 workers (at least 1) and chunks of 256 transforms.
//
// Parameters:
//   - options: functional options to configure the batch
//
// Returns:
//   - Batch: the newly created batch
func NewBatch(options ...BatchBuilderOption) Batch {
	b := &batchImpl{
		workers:   max(runtime.NumCPU()-1, 1),
		chunkSize: 256,
	}
	for _, option := range options {
		option(b)
	}
	b.pool = worker.NewDynamicWorkerPool(b.workers, 256, 1*time.Second)
	return b
}

func (b *batchImpl) Workers() int {
	return b.workers
}

func (b *batchImpl) ChunkSize() int {
	return b.chunkSize
}

func (b *batchImpl) Compute(ts []Transform) []Matrices {
	out := make([]Matrices, len(ts))

	// A single chunk is not worth a round trip through the pool.
	if len(ts) <= b.chunkSize {
		computeRange(ts, out, 0, len(ts))
		return out
	}

	// pool.Wait() only returns once workers go idle, so a WaitGroup is the per-call barrier.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(ts); start += b.chunkSize {
		end := min(start+b.chunkSize, len(ts))
		wg.Add(1)
		s, e := start, end
		b.pool.SubmitTask(worker.Task{
			ID:      taskID,
			Payload: [2]int{s, e},
			Do: func() (any, error) {
				defer wg.Done()
				computeRange(ts, out, s, e)
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()
	return out
}

func (b *batchImpl) Release() {
	b.pool.Stop()
}

// computeRange writes the matrices of ts[start:end] into out[start:end].
func computeRange(ts []Transform, out []Matrices, start, end int) {
	for i := start; i < end; i++ {
		out[i] = ts[i].Matrices()
	}
}
