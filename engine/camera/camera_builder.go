package camera

import (
	"github.com/Carmen-Shannon/oxy-raymarch/common"
	"github.com/go-gl/mathgl/mgl32"
)

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's position.
//
// Parameters:
//   - position: world-space camera position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(position mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = position
	}
}

// WithTarget sets the camera's look-at point.
//
// Parameters:
//   - target: world-space look-at point
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's target
func WithTarget(target mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = target
	}
}

// WithUp sets the camera's up vector. The vector is stored normalized.
//
// Parameters:
//   - up: up vector
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = up.Normalize()
	}
}

// WithFov sets the camera's vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = common.DegsToRads(fov)
	}
}

// WithNearFar sets the near and far clipping plane distances.
//
// Parameters:
//   - zNear: near plane distance
//   - zFar: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clipping planes
func WithNearFar(zNear, zFar float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zNear = zNear
		c.zFar = zFar
	}
}

// WithPerspective selects a perspective (true) or orthographic (false) projection.
//
// Parameters:
//   - perspective: whether the projection is perspective
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection mode
func WithPerspective(perspective bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.perspective = perspective
	}
}
