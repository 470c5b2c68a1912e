package uniform

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrUnknownUniform is returned when a uniform block has not been registered.
	ErrUnknownUniform = errors.New("unknown uniform block")

	// ErrUniformSize is returned when data does not fit the registered buffer.
	ErrUniformSize = errors.New("uniform data exceeds buffer size")
)

// Sink maps named uniform blocks of pipeline passes to GPU buffers and uploads data to them
// through a wgpu queue.
type Sink interface {
	// Register binds the uniform block name of pass to an existing buffer.
	// Registering the same block again replaces the previous buffer.
	//
	// Parameters:
	//   - pass: the pipeline pass that owns the block
	//   - name: the uniform block name
	//   - buf: the destination buffer, created with BufferUsageCopyDst
	//   - size: the buffer size in bytes
	Register(pass, name string, buf *wgpu.Buffer, size uint64)

	// Create allocates a uniform buffer on device and registers it.
	//
	// Parameters:
	//   - device: the device to allocate on
	//   - pass: the pipeline pass that owns the block
	//   - name: the uniform block name
	//   - size: the buffer size in bytes
	//
	// Returns:
	//   - *wgpu.Buffer: the new buffer, for bind group creation
	//   - error: if the buffer cannot be created
	Create(device *wgpu.Device, pass, name string, size uint64) (*wgpu.Buffer, error)

	// Buffer returns the buffer registered for a block, or nil.
	Buffer(pass, name string) *wgpu.Buffer

	// SetUniform uploads data to the start of a registered block's buffer.
	//
	// Parameters:
	//   - pass: the pipeline pass that owns the block
	//   - name: the uniform block name
	//   - data: the serialized block
	//
	// Returns:
	//   - error: ErrUnknownUniform, ErrUniformSize or the queue write error, wrapped with the block name
	SetUniform(pass, name string, data []byte) error
}

type block struct {
	buf  *wgpu.Buffer
	size uint64
}

type sinkImpl struct {
	mu     sync.Mutex
	write  func(buf *wgpu.Buffer, offset uint64, data []byte) error
	blocks map[string]block
}

var _ Sink = &sinkImpl{}

// NewSink creates a Sink that writes through queue.
//
// Parameters:
//   - queue: the device queue used for buffer writes
//
// Returns:
//   - Sink: the newly created sink
func NewSink(queue *wgpu.Queue) Sink {
	return newSink(func(buf *wgpu.Buffer, offset uint64, data []byte) error {
		return queue.WriteBuffer(buf, offset, data)
	})
}

func newSink(write func(buf *wgpu.Buffer, offset uint64, data []byte) error) *sinkImpl {
	return &sinkImpl{
		write:  write,
		blocks: make(map[string]block),
	}
}

func (s *sinkImpl) Register(pass, name string, buf *wgpu.Buffer, size uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[key(pass, name)] = block{buf: buf, size: size}
}

func (s *sinkImpl) Create(device *wgpu.Device, pass, name string, size uint64) (*wgpu.Buffer, error) {
	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: key(pass, name) + " Uniform Buffer",
		Size:  size,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create uniform buffer %s: %w", key(pass, name), err)
	}
	s.Register(pass, name, buf, size)
	return buf, nil
}

func (s *sinkImpl) Buffer(pass, name string) *wgpu.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blocks[key(pass, name)].buf
}

func (s *sinkImpl) SetUniform(pass, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blocks[key(pass, name)]
	if !ok {
		return fmt.Errorf("set uniform %s: %w", key(pass, name), ErrUnknownUniform)
	}
	if uint64(len(data)) > b.size {
		return fmt.Errorf("set uniform %s (%d > %d bytes): %w", key(pass, name), len(data), b.size, ErrUniformSize)
	}
	if err := s.write(b.buf, 0, data); err != nil {
		return fmt.Errorf("set uniform %s: %w", key(pass, name), err)
	}
	return nil
}

// key joins a pass and block name the way shaders refer to them.
func key(pass, name string) string {
	return pass + "." + name
}
