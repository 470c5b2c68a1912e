package camera

import (
	"github.com/Carmen-Shannon/oxy-raymarch/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	zNear  float32
	zFar   float32
	fov    float32 // radians
	aspect float32

	perspective bool

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4

	viewDirty       bool
	projectionDirty bool
}

// Camera defines the interface for a 3D view/projection provider.
// The camera holds a (position, target, up) pose and frustum settings, and caches the
// view and projection matrices derived from them.
//
// The cached matrices are only recomputed by UpdateViewProjectionMatrices. Mutators mark
// the affected matrix dirty, and the matrix accessors return the cached value as-is, so a
// caller must refresh after mutating and before reading to observe the new state.
//
// A Camera is not safe for concurrent use.
type Camera interface {
	// Translate moves both the position and the target by offset.
	// The view direction and the distance to the target are preserved.
	//
	// Parameters:
	//   - offset: world-space offset
	Translate(offset mgl32.Vec3)

	// TranslateLocal moves the camera by an offset expressed in its own frame,
	// where X is aside, Y is up and Z is forward.
	//
	// Parameters:
	//   - offset: camera-local offset
	TranslateLocal(offset mgl32.Vec3)

	// Rotate rotates the view direction and the up vector around a world-space axis.
	// The position is held fixed and the target is moved, so the camera turns in place.
	// A zero axis or a zero angle is a no-op.
	//
	// Parameters:
	//   - axis: world-space rotation axis, need not be unit length
	//   - angle: rotation angle in radians
	Rotate(axis mgl32.Vec3, angle float32)

	// RotateLocal rotates the camera around an axis expressed in its own frame.
	// A zero axis or a zero angle is a no-op.
	//
	// Parameters:
	//   - axis: camera-local rotation axis
	//   - angle: rotation angle in radians
	RotateLocal(axis mgl32.Vec3, angle float32)

	// SetPosition sets the camera position and marks the view matrix dirty.
	SetPosition(position mgl32.Vec3)

	// SetTarget sets the look-at point and marks the view matrix dirty.
	SetTarget(target mgl32.Vec3)

	// SetUp sets the up vector, storing it normalized, and marks the view matrix dirty.
	SetUp(up mgl32.Vec3)

	// Position returns the camera position.
	Position() mgl32.Vec3

	// Target returns the look-at point.
	Target() mgl32.Vec3

	// UpNormalized returns the stored unit up vector.
	UpNormalized() mgl32.Vec3

	// Forward returns target - position.
	Forward() mgl32.Vec3

	// ForwardNormalized returns the unit forward vector.
	ForwardNormalized() mgl32.Vec3

	// AsideNormalized returns the unit vector forward x up, pointing to the camera's right.
	AsideNormalized() mgl32.Vec3

	// SetPerspective selects a perspective (true) or orthographic (false) projection.
	//
	// Parameters:
	//   - perspective: whether the projection is perspective
	SetPerspective(perspective bool)

	// SetFrustum sets all frustum parameters at once.
	//
	// Parameters:
	//   - fov: vertical field of view in degrees
	//   - aspect: aspect ratio (width / height)
	//   - zNear: near clipping plane distance
	//   - zFar: far clipping plane distance
	SetFrustum(fov, aspect, zNear, zFar float32)

	// SetAspect sets the aspect ratio (width / height).
	SetAspect(aspect float32)

	// SetNearFar sets the near and far clipping plane distances.
	SetNearFar(zNear, zFar float32)

	// SetNear sets the near clipping plane distance.
	SetNear(zNear float32)

	// SetFar sets the far clipping plane distance.
	SetFar(zFar float32)

	// SetFov sets the vertical field of view in degrees.
	SetFov(fov float32)

	// Perspective reports whether the projection is perspective.
	Perspective() bool

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// Fov returns the vertical field of view in degrees.
	Fov() float32

	// UpdateViewProjectionMatrices recomputes each cached matrix whose inputs changed since
	// the last refresh. It is a no-op when nothing is dirty.
	UpdateViewProjectionMatrices()

	// ViewMatrix returns the cached view matrix without refreshing it.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix as of the last refresh
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the cached projection matrix without refreshing it.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix as of the last refresh
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionInverseMatrix returns inverse(projection * view) computed from the
	// cached matrices on every call. A singular product yields the zero matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse view-projection matrix
	ViewProjectionInverseMatrix() mgl32.Mat4

	// Frustum returns the view frustum planes of the cached projection * view matrix.
	//
	// Returns:
	//   - common.Frustum: the normalized frustum planes
	Frustum() common.Frustum
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera with placeholder settings: positioned at (0, 0, 2) looking at
// the origin with +Y up, a 60 degree perspective frustum and near/far planes of 0.01/10000.
// The matrices are computed once before returning.
//
// Parameters:
//   - aspect: aspect ratio (width / height)
//   - options: functional options to override the placeholder settings
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(aspect float32, options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		position:        mgl32.Vec3{0, 0, 2},
		target:          mgl32.Vec3{0, 0, 0},
		up:              mgl32.Vec3{0, 1, 0},
		zNear:           0.01,
		zFar:            10000,
		fov:             common.DegsToRads(float32(60)),
		aspect:          aspect,
		perspective:     true,
		viewDirty:       true,
		projectionDirty: true,
	}
	for _, option := range options {
		option(c)
	}
	c.UpdateViewProjectionMatrices()
	return c
}

// NewCameraFromParams creates a Camera from explicit parameters.
// The matrices are computed once before returning.
//
// Parameters:
//   - position: camera position
//   - target: look-at point
//   - up: up vector, stored normalized
//   - fov: vertical field of view in degrees
//   - aspect: aspect ratio (width / height)
//   - zNear: near clipping plane distance
//   - zFar: far clipping plane distance
//   - perspective: whether the projection is perspective or orthographic
//
// Returns:
//   - Camera: the newly created camera
func NewCameraFromParams(position, target, up mgl32.Vec3, fov, aspect, zNear, zFar float32, perspective bool) Camera {
	c := &cameraImpl{
		position:        position,
		target:          target,
		up:              up.Normalize(),
		zNear:           zNear,
		zFar:            zFar,
		fov:             common.DegsToRads(fov),
		aspect:          aspect,
		perspective:     perspective,
		viewDirty:       true,
		projectionDirty: true,
	}
	c.UpdateViewProjectionMatrices()
	return c
}

func (c *cameraImpl) Translate(offset mgl32.Vec3) {
	c.position = c.position.Add(offset)
	c.target = c.target.Add(offset)
	c.viewDirty = true
}

func (c *cameraImpl) TranslateLocal(offset mgl32.Vec3) {
	c.Translate(c.localToGlobalMatrix().Mul3x1(offset))
}

func (c *cameraImpl) Rotate(axis mgl32.Vec3, angle float32) {
	if axis == (mgl32.Vec3{}) || angle == 0 {
		return
	}

	q := mgl32.QuatRotate(angle, axis.Normalize())
	c.target = q.Rotate(c.Forward()).Add(c.position)
	c.up = q.Rotate(c.up)
	c.viewDirty = true
}

func (c *cameraImpl) RotateLocal(axis mgl32.Vec3, angle float32) {
	c.Rotate(c.localToGlobalMatrix().Mul3x1(axis), angle)
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.position = position
	c.viewDirty = true
}

func (c *cameraImpl) SetTarget(target mgl32.Vec3) {
	c.target = target
	c.viewDirty = true
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.up = up.Normalize()
	c.viewDirty = true
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) Target() mgl32.Vec3 {
	return c.target
}

func (c *cameraImpl) UpNormalized() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	return c.target.Sub(c.position)
}

func (c *cameraImpl) ForwardNormalized() mgl32.Vec3 {
	return c.Forward().Normalize()
}

func (c *cameraImpl) AsideNormalized() mgl32.Vec3 {
	return c.ForwardNormalized().Cross(c.up).Normalize()
}

func (c *cameraImpl) SetPerspective(perspective bool) {
	c.perspective = perspective
	c.projectionDirty = true
}

func (c *cameraImpl) SetFrustum(fov, aspect, zNear, zFar float32) {
	c.fov = common.DegsToRads(fov)
	c.aspect = aspect
	c.zNear = zNear
	c.zFar = zFar
	c.projectionDirty = true
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
	c.projectionDirty = true
}

func (c *cameraImpl) SetNearFar(zNear, zFar float32) {
	c.zNear = zNear
	c.zFar = zFar
	c.projectionDirty = true
}

func (c *cameraImpl) SetNear(zNear float32) {
	c.zNear = zNear
	c.projectionDirty = true
}

func (c *cameraImpl) SetFar(zFar float32) {
	c.zFar = zFar
	c.projectionDirty = true
}

func (c *cameraImpl) SetFov(fov float32) {
	c.fov = common.DegsToRads(fov)
	c.projectionDirty = true
}

func (c *cameraImpl) Perspective() bool {
	return c.perspective
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.zNear
}

func (c *cameraImpl) Far() float32 {
	return c.zFar
}

func (c *cameraImpl) Fov() float32 {
	return common.RadsToDegs(c.fov)
}

func (c *cameraImpl) UpdateViewProjectionMatrices() {
	c.updateViewMatrix()
	c.updateProjectionMatrix()
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionInverseMatrix() mgl32.Mat4 {
	return c.projectionMatrix.Mul4(c.viewMatrix).Inv()
}

func (c *cameraImpl) Frustum() common.Frustum {
	return common.ExtractFrustum(c.projectionMatrix.Mul4(c.viewMatrix))
}

// localToGlobalMatrix returns the change of basis from the camera frame to world space.
// Its columns are aside, up and forward. Aside and forward are normalized here, but up is
// the stored vector as-is and is not re-orthogonalized against forward, so the basis is
// only orthonormal when the stored up is perpendicular to the view direction.
func (c *cameraImpl) localToGlobalMatrix() mgl32.Mat3 {
	return mgl32.Mat3FromCols(c.AsideNormalized(), c.up, c.ForwardNormalized())
}

// updateViewMatrix recomputes the view matrix if the pose changed since the last refresh.
func (c *cameraImpl) updateViewMatrix() {
	if !c.viewDirty {
		return
	}
	c.viewMatrix = common.LookAt(c.position, c.target, c.up)
	c.viewDirty = false
}

// updateProjectionMatrix recomputes the projection matrix if the frustum changed since the
// last refresh.
func (c *cameraImpl) updateProjectionMatrix() {
	if !c.projectionDirty {
		return
	}
	if c.perspective {
		c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.zNear, c.zFar)
	} else {
		c.projectionMatrix = common.Orthographic(c.aspect, c.zNear, c.zFar)
	}
	c.projectionDirty = false
}
