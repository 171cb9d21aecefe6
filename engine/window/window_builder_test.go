package window

import "testing"

func TestWindowBuilderOptions(t *testing.T) {
	w := &engineWindow{
		title:  "rt",
		width:  1280,
		height: 720,
	}

	for _, opt := range []WindowBuilderOption{
		WithTitle("triangle host"),
		WithSize(640, 480),
		WithCPUProfile(),
	} {
		opt(w)
	}

	if w.title != "triangle host" {
		t.Errorf("title = %q, want \"triangle host\"", w.title)
	}
	if w.width != 640 || w.height != 480 {
		t.Errorf("size = %dx%d, want 640x480", w.width, w.height)
	}
	if !w.cpuProfile {
		t.Error("cpuProfile not enabled")
	}
}

func TestInnerSizeMatchesStoredDimensions(t *testing.T) {
	w := &engineWindow{width: 800, height: 600}

	width, height := w.InnerSize()
	if width != 800 || height != 600 {
		t.Errorf("InnerSize = %dx%d, want 800x600", width, height)
	}
	if w.Width() != 800 || w.Height() != 600 {
		t.Errorf("Width/Height = %dx%d, want 800x600", w.Width(), w.Height())
	}
}
