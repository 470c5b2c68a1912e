package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-raymarch/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform block coordinates of the ray camera in the ray-marching pass.
const (
	RayCameraPass    = "rayMarch"
	RayCameraUniform = "camera"
)

// GPURayCameraSource is the canonical WGSL definition of the RayCamera struct.
// Matches GPURayCamera layout exactly (64 bytes, std140/std430 aligned).
//
//go:embed assets/ray_camera.wgsl
var GPURayCameraSource string

// GPURayCamera is the GPU-aligned camera ray basis consumed by the ray-marching shader.
// A pixel at normalized screen coordinates (u, v) in [0, 1] casts the ray
// Ray0 + u*Horizontal + v*Vertical from Position.
// Size: 64 bytes.
type GPURayCamera struct {
	Position   [4]float32 // offset  0: world-space eye position, w = 1
	Ray0       [4]float32 // offset 16: ray through the bottom-left corner of the near plane
	Horizontal [4]float32 // offset 32: bottom-right corner ray minus Ray0
	Vertical   [4]float32 // offset 48: top-left corner ray minus Ray0
}

// NewGPURayCamera derives the ray basis from the camera's cached matrices.
// The NDC corners are unprojected through the inverse view-projection matrix, so the
// result is as stale as the camera's last refresh.
//
// Parameters:
//   - c: the camera to derive the basis from
//
// Returns:
//   - GPURayCamera: the ray basis
func NewGPURayCamera(c Camera) GPURayCamera {
	inv := c.ViewProjectionInverseMatrix()
	eye := c.Position().Vec4(1)

	cornerRay := func(ndc mgl32.Vec4) mgl32.Vec4 {
		return common.TransformPoint(inv, ndc).Sub(eye)
	}
	ray00 := cornerRay(mgl32.Vec4{-1, -1, 0, 1})
	ray10 := cornerRay(mgl32.Vec4{1, -1, 0, 1})
	ray01 := cornerRay(mgl32.Vec4{-1, 1, 0, 1})

	return GPURayCamera{
		Position:   eye,
		Ray0:       ray00,
		Horizontal: ray10.Sub(ray00),
		Vertical:   ray01.Sub(ray00),
	}
}

// Size returns the size of the GPURayCamera struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPURayCamera) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPURayCamera struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPURayCamera) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i, v := range [4][4]float32{g.Position, g.Ray0, g.Horizontal, g.Vertical} {
		for j := range 4 {
			binary.LittleEndian.PutUint32(buf[i*16+j*4:], math.Float32bits(v[j]))
		}
	}
	return buf
}

// UniformSink receives named uniform blocks for an external rendering pipeline.
type UniformSink interface {
	// SetUniform uploads data to the uniform block name of the given pass.
	//
	// Parameters:
	//   - pass: the pipeline pass that owns the block
	//   - name: the uniform block name
	//   - data: the serialized block
	//
	// Returns:
	//   - error: if the block is unknown or the upload fails
	SetUniform(pass, name string, data []byte) error
}

// PushRayCamera derives the ray basis of c and uploads it to the ray camera uniform block.
//
// Parameters:
//   - sink: the uniform destination
//   - c: the camera to derive the basis from
//
// Returns:
//   - error: if the upload fails
func PushRayCamera(sink UniformSink, c Camera) error {
	rc := NewGPURayCamera(c)
	return sink.SetUniform(RayCameraPass, RayCameraUniform, rc.Marshal())
}
