package transform

// BatchBuilderOption is a functional option for configuring a Batch.
type BatchBuilderOption func(*batchImpl)

// WithWorkers sets the maximum number of pool workers. Values below 1 are raised to 1.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - BatchBuilderOption: functional option to set the worker count
func WithWorkers(n int) BatchBuilderOption {
	return func(b *batchImpl) {
		b.workers = max(n, 1)
	}
}

// WithChunkSize sets how many transforms a single task evaluates. Values below 1 are raised to 1.
//
// Parameters:
//   - n: transforms per task
//
// Returns:
//   - BatchBuilderOption: functional option to set the chunk size
func WithChunkSize(n int) BatchBuilderOption {
	return func(b *batchImpl) {
		b.chunkSize = max(n, 1)
	}
}
