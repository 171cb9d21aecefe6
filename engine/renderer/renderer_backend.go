package renderer

import (
	"github.com/oliverbestmann/webgpu/wgpu"

	"github.com/ferrost/rt/engine/renderer/pipeline"
)

// RendererBackend abstracts the GPU API surface the renderer drives:
// capability reporting, surface configuration, and the per-frame
// acquire/record/submit/present cycle. The production implementation sits on
// the WebGPU binding; tests substitute a fake to exercise the frame state
// machine without a GPU.
type RendererBackend interface {
	// Capabilities returns the surface capabilities reported by the adapter.
	//
	// Returns:
	//   - SurfaceCapabilities: supported formats, alpha modes, and present modes
	Capabilities() SurfaceCapabilities

	// MaxImmediateSize returns the largest immediate constant block the
	// adapter can push per draw, in bytes.
	MaxImmediateSize() uint32

	// ConfigureSurface applies config to the surface. Called once during
	// construction and again on every resize; reconfiguring with equal
	// dimensions is harmless.
	//
	// Parameters:
	//   - config: the surface configuration to apply
	ConfigureSurface(config *wgpu.SurfaceConfiguration)

	// BeginFrame acquires the next surface texture, creates a render view in
	// the given format, and opens the frame's render pass clearing to opaque
	// black. Returns ErrSurfaceOutdated or ErrSurfaceLost for recoverable
	// swap-chain loss; any other error means the frame is dropped.
	//
	// Parameters:
	//   - viewFormat: the texture format for the frame's render view
	//
	// Returns:
	//   - error: classified acquisition error, or nil
	BeginFrame(viewFormat wgpu.TextureFormat) error

	// Draw binds the pipeline specialized for the current frame's view format,
	// pushes the immediate block at offset 0, and records a draw of 3 vertices
	// and 1 instance. Must follow a successful BeginFrame.
	//
	// Parameters:
	//   - p: the pipeline description to draw with
	//   - immediateData: the marshalled immediate block
	//
	// Returns:
	//   - error: error if no frame is open or pipeline creation fails
	Draw(p pipeline.Pipeline, immediateData []byte) error

	// EndFrame closes the render pass, finishes the encoder, and submits the
	// frame's single command buffer. Must follow a successful BeginFrame.
	//
	// Returns:
	//   - error: error if no frame is open or encoding fails
	EndFrame() error

	// DiscardFrame abandons the frame in flight without submitting or
	// presenting: the open pass and encoder are dropped and the acquired
	// texture is released so the next frame can acquire cleanly. No-op when
	// no frame is in flight.
	DiscardFrame()

	// Present presents the acquired frame and releases per-frame resources.
	// No-op when no frame is in flight.
	Present()

	// Release destroys all GPU objects in reverse acquisition order.
	Release()
}
