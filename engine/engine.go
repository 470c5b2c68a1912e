package engine

import (
	"errors"
	"log"

	"github.com/Carmen-Shannon/oxy-raymarch/engine/camera"
	"github.com/Carmen-Shannon/oxy-raymarch/engine/profiler"
	"github.com/Carmen-Shannon/oxy-raymarch/engine/window"
)

// ErrNoWindow is returned by Run when the engine has no window to drive.
var ErrNoWindow = errors.New("engine has no window")

// engine implements the Engine interface.
// All frame work runs on the window's message loop thread; the camera is never shared.
type engine struct {
	window     window.Window
	camera     camera.Camera
	controller camera.CameraController
	sink       camera.UniformSink

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(deltaTime float32)

	lastUniformErr error
}

// Engine is the main entry point for the viewer.
// Each iteration of the window message loop is one frame: the frame clock advances, the
// controller applies polled input to the camera and refreshes it, the camera ray basis is
// pushed to the uniform sink, and the frame callback runs.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil
	Window() window.Window

	// Camera returns the camera driven by the engine.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// SetFrameCallback registers the function called at the end of each frame, after the
	// camera has been refreshed and its uniform pushed.
	//
	// Parameters:
	//   - callback: function receiving the frame time delta in milliseconds
	SetFrameCallback(callback func(deltaTime float32))

	// Run drives frames until the window closes, then releases the window.
	//
	// Returns:
	//   - error: ErrNoWindow, or the error from closing the window
	Run() error

	// Quit asks the message loop to stop after the current frame.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Without WithCamera a default camera is created with the window's aspect ratio (or 1),
// and without WithController a fly controller with default sensitivities is used.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{}
	for _, opt := range options {
		opt(e)
	}

	if e.camera == nil {
		aspect := float32(1)
		if e.window != nil && e.window.AspectRatio() > 0 {
			aspect = e.window.AspectRatio()
		}
		e.camera = camera.NewCamera(aspect)
	}
	if e.controller == nil {
		e.controller = camera.NewCameraController()
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogging(e.profilingEnabled))

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			// A minimized window reports a zero height; keep the last aspect ratio.
			if aspect := e.window.AspectRatio(); aspect > 0 {
				e.camera.SetAspect(aspect)
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}

	e.window.SetUpdateCallback(func() {
		dt, _ := e.profiler.Tick()
		e.frame(dt)
	})
	e.window.ProcessMessages()
	e.window.SetUpdateCallback(nil)

	log.Printf("[Engine] message loop finished, closing window")
	return e.window.Close()
}

func (e *engine) Quit() {
	if e.window != nil {
		e.window.RequestClose()
	}
}

// frame runs one frame with the given time delta in milliseconds.
func (e *engine) frame(dt float32) {
	if quit := e.controller.Update(e.window, e.camera, dt); quit {
		e.Quit()
		return
	}

	if e.sink != nil {
		err := camera.PushRayCamera(e.sink, e.camera)
		// Log only when the failure changes so a missing block does not flood the log.
		if err != nil && (e.lastUniformErr == nil || err.Error() != e.lastUniformErr.Error()) {
			log.Printf("[Engine] failed to push ray camera uniform: %v", err)
		}
		e.lastUniformErr = err
	}

	if e.frameCallback != nil {
		e.frameCallback(dt)
	}
}
