package camera

import (
	"github.com/Carmen-Shannon/oxy-raymarch/common"
	"github.com/go-gl/mathgl/mgl32"
)

// InputState exposes polled keyboard and mouse state for the current frame.
// Key and button codes are the values in common (GLFW compatible).
type InputState interface {
	// IsKeyPressed reports whether key is currently held down.
	IsKeyPressed(key int) bool

	// IsMouseButtonPressed reports whether button is currently held down.
	IsMouseButtonPressed(button int) bool

	// CursorPos returns the cursor position in window coordinates.
	CursorPos() (x, y float64)
}

// CameraController translates polled input into camera mutations once per frame.
// Movement keys move the camera in its own frame (W/Up forward, S/Down back, A/Left left,
// D/Right right, F up, R down) and dragging with the left mouse button turns it.
type CameraController interface {
	// Update applies one frame of input to the camera and refreshes its matrices.
	//
	// Parameters:
	//   - input: polled input state for this frame
	//   - c: the camera to drive
	//   - timeDelta: time since the previous frame in milliseconds
	//
	// Returns:
	//   - bool: true on the frame Escape goes from released to pressed
	Update(input InputState, c Camera, timeDelta float32) bool

	// MoveSensitivity returns the translation speed in world units per millisecond.
	MoveSensitivity() float32

	// MouseSensitivity returns the rotation in radians per pixel of cursor movement.
	MouseSensitivity() float32
}

type cameraControllerImpl struct {
	moveSensitivity  float32
	mouseSensitivity float32

	lastEsc    bool
	lastMouseX float64
	lastMouseY float64
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a fly controller with a move sensitivity of 0.002 and a
// mouse sensitivity of 0.001.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		moveSensitivity:  0.002,
		mouseSensitivity: 0.001,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) MoveSensitivity() float32 {
	return cc.moveSensitivity
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) Update(input InputState, c Camera, timeDelta float32) bool {
	nowEsc := input.IsKeyPressed(common.KeyEsc)
	quit := nowEsc && !cc.lastEsc
	cc.lastEsc = nowEsc

	forward := input.IsKeyPressed(common.KeyW) || input.IsKeyPressed(common.KeyUp)
	back := input.IsKeyPressed(common.KeyS) || input.IsKeyPressed(common.KeyDown)
	left := input.IsKeyPressed(common.KeyA) || input.IsKeyPressed(common.KeyLeft)
	right := input.IsKeyPressed(common.KeyD) || input.IsKeyPressed(common.KeyRight)
	up := input.IsKeyPressed(common.KeyR)
	down := input.IsKeyPressed(common.KeyF)

	if forward || back || left || right || up || down {
		s := cc.moveSensitivity
		forwardDelta := (pick(forward, s, -s) + pick(back, -s, s)) * timeDelta
		rightDelta := (pick(right, s, -s) + pick(left, -s, s)) * timeDelta
		upDelta := (pick(up, -s, s) + pick(down, s, -s)) * timeDelta
		c.TranslateLocal(mgl32.Vec3{rightDelta, upDelta, forwardDelta})
	}

	mouseX, mouseY := input.CursorPos()
	if input.IsMouseButtonPressed(common.MouseButtonLeft) {
		xMove := cc.mouseSensitivity * float32(cc.lastMouseX-mouseX)
		yMove := cc.mouseSensitivity * float32(cc.lastMouseY-mouseY)
		c.Rotate(mgl32.Vec3{0, 1, 0}, -xMove)
		c.RotateLocal(mgl32.Vec3{1, 0, 0}, yMove)
	}
	cc.lastMouseX, cc.lastMouseY = mouseX, mouseY

	c.UpdateViewProjectionMatrices()
	return quit
}

// pick returns a if cond holds, b otherwise.
func pick(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
