package engine

import (
	"github.com/Carmen-Shannon/oxy-raymarch/engine/camera"
	"github.com/Carmen-Shannon/oxy-raymarch/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables the periodic frame rate and memory log line.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window whose message loop drives the engine and whose input state
// feeds the camera controller.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithCamera sets the camera driven by the engine.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithController sets the controller that applies input to the camera each frame.
//
// Parameters:
//   - ctrl: the camera controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(ctrl camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = ctrl
	}
}

// WithUniformSink sets where the camera ray basis is uploaded each frame.
// Without a sink the engine only updates the camera.
//
// Parameters:
//   - sink: the uniform destination
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUniformSink(sink camera.UniformSink) EngineBuilderOption {
	return func(e *engine) {
		e.sink = sink
	}
}
