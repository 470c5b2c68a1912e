package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-raymarch/common"
)

func TestWindowDefaults(t *testing.T) {
	w := newEngineWindow(WithTitle("raymarch"), WithSize(800, 400), WithSizeLimits(100, 100, 1920, 1080))

	if w.title != "raymarch" {
		t.Fatalf("engineWindow.title\nhave %q\nwant %q", w.title, "raymarch")
	}
	if w.Width() != 800 || w.Height() != 400 {
		t.Fatalf("engineWindow size\nhave %dx%d\nwant 800x400", w.Width(), w.Height())
	}
	if w.minWidth != 100 || w.maxHeight != 1080 {
		t.Fatalf("engineWindow size limits\nhave %d..%d\nwant 100..1080", w.minWidth, w.maxHeight)
	}
	if a := w.AspectRatio(); a != 2 {
		t.Fatalf("engineWindow.AspectRatio\nhave %v\nwant 2", a)
	}
	// No platform window was created.
	if w.IsRunning() {
		t.Fatal("engineWindow.IsRunning\nhave true\nwant false")
	}
	if w.SurfaceDescriptor() != nil {
		t.Fatal("engineWindow.SurfaceDescriptor\nhave non-nil\nwant nil")
	}
	if err := w.Close(); err == nil {
		t.Fatal("engineWindow.Close\nhave nil\nwant error")
	}
}

func TestWindowInputState(t *testing.T) {
	w := newEngineWindow()

	if w.IsKeyPressed(common.KeyW) {
		t.Fatal("IsKeyPressed(W) before any event\nhave true\nwant false")
	}
	w.handleKey(common.KeyW, true)
	w.handleKey(common.KeyEsc, true)
	w.handleKey(common.KeyEsc, false)
	if !w.IsKeyPressed(common.KeyW) {
		t.Fatal("IsKeyPressed(W)\nhave false\nwant true")
	}
	if w.IsKeyPressed(common.KeyEsc) {
		t.Fatal("IsKeyPressed(Esc) after release\nhave true\nwant false")
	}

	w.handleMouseButton(common.MouseButtonLeft, true)
	if !w.IsMouseButtonPressed(common.MouseButtonLeft) || w.IsMouseButtonPressed(common.MouseButtonRight) {
		t.Fatal("IsMouseButtonPressed\nhave wrong button state")
	}

	w.handleCursor(12.5, 99)
	if x, y := w.CursorPos(); x != 12.5 || y != 99 {
		t.Fatalf("CursorPos\nhave %v %v\nwant 12.5 99", x, y)
	}
}

func TestWindowResize(t *testing.T) {
	w := newEngineWindow()
	var gotW, gotH int
	w.SetResizeCallback(func(width, height int) { gotW, gotH = width, height })

	w.handleResize(1000, 500)
	if gotW != 1000 || gotH != 500 {
		t.Fatalf("resize callback\nhave %dx%d\nwant 1000x500", gotW, gotH)
	}
	if a := w.AspectRatio(); a != 2 {
		t.Fatalf("AspectRatio\nhave %v\nwant 2", a)
	}

	w.handleResize(1000, 0)
	if a := w.AspectRatio(); a != 0 {
		t.Fatalf("AspectRatio minimized\nhave %v\nwant 0", a)
	}
}
