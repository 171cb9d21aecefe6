package renderer

import "github.com/oliverbestmann/webgpu/wgpu"

// RendererBuilderOption configures a renderer during construction.
type RendererBuilderOption func(*renderer)

// WithBackend substitutes the GPU backend. Used to inject alternate backend
// implementations, including fakes in tests.
//
// Parameters:
//   - backend: the backend to use instead of the default WebGPU backend
func WithBackend(backend RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = backend
	}
}

// WithPresentMode overrides the negotiated present mode. Without this option
// the renderer prefers adaptive vsync when the surface supports it.
//
// Parameters:
//   - mode: the present mode to force
func WithPresentMode(mode wgpu.PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}
