package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and polled input state.
// Wraps platform-specific window implementations with a common interface.
// Key and mouse button codes match the values in common (GLFW compatible).
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// IsKeyPressed reports whether key is held down as of the last message poll.
	//
	// Parameters:
	//   - key: the key code
	//
	// Returns:
	//   - bool: true while the key is held
	IsKeyPressed(key int) bool

	// IsMouseButtonPressed reports whether a mouse button is held down as of the last message poll.
	//
	// Parameters:
	//   - button: the mouse button code
	//
	// Returns:
	//   - bool: true while the button is held
	IsMouseButtonPressed(button int) bool

	// CursorPos returns the last cursor position in window coordinates.
	//
	// Returns:
	//   - x, y: cursor position in pixels from the top-left corner
	CursorPos() (x, y float64)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the message loop to stop after the current iteration.
	// The platform window stays alive until Close.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// AspectRatio returns width / height, or 0 while the window has no height (minimized).
	//
	// Returns:
	//   - float32: the aspect ratio
	AspectRatio() float32
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, polled input and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// closeRequested stops the message loop without destroying the window.
	closeRequested bool

	// keys holds the pressed state of each key code seen so far.
	keys map[int]bool

	// buttons holds the pressed state of each mouse button seen so far.
	buttons map[int]bool

	// cursorX, cursorY hold the last cursor position.
	cursorX, cursorY float64

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

// newEngineWindow applies defaults and options without creating the platform window.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:     "Default Window Title",
		maxWidth:  1600,
		maxHeight: 1200,
		minWidth:  600,
		minHeight: 200,
		width:     1280,
		height:    720,
		keys:      make(map[int]bool),
		buttons:   make(map[int]bool),
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) IsKeyPressed(key int) bool {
	return w.keys[key]
}

func (w *engineWindow) IsMouseButtonPressed(button int) bool {
	return w.buttons[button]
}

func (w *engineWindow) CursorPos() (x, y float64) {
	return w.cursorX, w.cursorY
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return !w.closeRequested && platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	w.closeRequested = true
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) AspectRatio() float32 {
	if w.height <= 0 {
		return 0
	}
	return float32(w.width) / float32(w.height)
}

// handleKey records a key transition. Repeats keep the key pressed.
func (w *engineWindow) handleKey(key int, pressed bool) {
	w.keys[key] = pressed
}

// handleMouseButton records a mouse button transition.
func (w *engineWindow) handleMouseButton(button int, pressed bool) {
	w.buttons[button] = pressed
}

// handleCursor records the cursor position.
func (w *engineWindow) handleCursor(x, y float64) {
	w.cursorX, w.cursorY = x, y
}

// handleResize stores the new framebuffer size and notifies the resize callback.
func (w *engineWindow) handleResize(width, height int) {
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}
