package window

// WindowBuilderOption configures a window during construction.
type WindowBuilderOption func(*engineWindow)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title displayed in the title bar
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the requested window size in logical pixels. The stored size
// is updated to the actual framebuffer size once the platform window exists.
//
// Parameters:
//   - width: requested width
//   - height: requested height
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
		w.height = height
	}
}

// WithCPUProfile enables a CPU profile spanning the window's lifetime,
// written when the window closes.
func WithCPUProfile() WindowBuilderOption {
	return func(w *engineWindow) {
		w.cpuProfile = true
	}
}
