package renderer

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"

	"github.com/ferrost/rt/engine/immediates"
	"github.com/ferrost/rt/engine/renderer/pipeline"
	"github.com/ferrost/rt/engine/renderer/shader"
)

// Window is the subset of the windowing layer the renderer needs: the current
// inner size in pixels, the platform surface descriptor, and the pre-present
// timing hook. The window must outlive the renderer; the renderer never
// closes or owns it.
type Window interface {
	// InnerSize returns the current drawable size in pixels.
	InnerSize() (width, height uint32)

	// SurfaceDescriptor returns the platform-specific descriptor used to
	// create the rendering surface.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// PrePresentNotify is invoked immediately before each present so the
	// platform can align presentation timing.
	PrePresentNotify()
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	window  Window
	backend RendererBackend

	surfaceConfig      *wgpu.SurfaceConfiguration
	viewFormat         wgpu.TextureFormat
	pendingPresentMode *wgpu.PresentMode

	trianglePipeline pipeline.Pipeline
	immediateBlock   immediates.GPUImmediates
}

// Renderer owns the GPU device, a surface configuration kept coherent with
// the window size, the fixed triangle pipeline, and the per-frame
// submit/present cycle.
type Renderer interface {
	// Render draws one frame: acquire, clear, draw the triangle with the
	// current immediate block, submit, present. Frame-level errors are
	// absorbed; recoverable swap-chain loss triggers a reconfiguration and
	// drops the frame, anything else is logged and drops the frame. A
	// dropped frame is never partially submitted or presented.
	Render()

	// Resize re-reads the window's inner size, reconfigures the surface, and
	// updates the immediate block. A zero width or height is a no-op.
	Resize()

	// SurfaceFormat returns the negotiated surface color format.
	SurfaceFormat() wgpu.TextureFormat

	// Release destroys all GPU resources. The window is left untouched.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer acquires a GPU device for the given window, negotiates the
// surface configuration against the reported capabilities, and builds the
// triangle pipeline description. Construction errors are fatal; the caller
// gets no partially working renderer.
//
// Parameters:
//   - window: the window to render into (must outlive the renderer)
//   - options: functional options for renderer configuration
//
// Returns:
//   - Renderer: the newly created renderer
//   - error: acquisition, capability, or limit error
func NewRenderer(window Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{window: window}
	for _, opt := range options {
		opt(r)
	}

	immediateSize := uint32((&immediates.GPUImmediates{}).Size())

	if r.backend == nil {
		backend, err := newWGPURendererBackend(window.SurfaceDescriptor(), immediateSize)
		if err != nil {
			return nil, err
		}
		r.backend = backend
	}

	if err := r.initialize(); err != nil {
		r.backend.Release()
		return nil, err
	}

	return r, nil
}

// initialize negotiates capabilities, applies the initial surface
// configuration, and assembles the triangle pipeline description.
func (r *renderer) initialize() error {
	width, height := r.window.InnerSize()
	r.immediateBlock = immediates.NewGPUImmediates(width, height)

	if max := r.backend.MaxImmediateSize(); max < uint32(r.immediateBlock.Size()) {
		return fmt.Errorf("%w: backend allows %d bytes, need %d", ErrImmediateLimitTooLow, max, r.immediateBlock.Size())
	}

	caps := r.backend.Capabilities()
	format, err := findSurfaceFormat(caps.Formats)
	if err != nil {
		return fmt.Errorf("select surface format: %w", err)
	}
	alphaMode, err := findAlphaMode(caps.AlphaModes)
	if err != nil {
		return fmt.Errorf("select alpha mode: %w", err)
	}

	presentMode := choosePresentMode(caps.PresentModes)
	if r.pendingPresentMode != nil {
		presentMode = *r.pendingPresentMode
	}

	r.viewFormat = SrgbVariant(format)
	r.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:                      wgpu.TextureUsageRenderAttachment,
		Format:                     format,
		Width:                      width,
		Height:                     height,
		PresentMode:                presentMode,
		DesiredMaximumFrameLatency: 2,
		AlphaMode:                  alphaMode,
		ViewFormats:                []wgpu.TextureFormat{r.viewFormat},
	}
	r.backend.ConfigureSurface(r.surfaceConfig)

	p, err := buildTrianglePipeline(uint32(r.immediateBlock.Size()))
	if err != nil {
		return err
	}
	r.trianglePipeline = p

	return nil
}

// buildTrianglePipeline assembles the fixed full-screen triangle pipeline
// from the embedded shader sources.
func buildTrianglePipeline(immediateSize uint32) (pipeline.Pipeline, error) {
	vs, err := shader.NewShader(
		shader.WithKey("triangle_vert"),
		shader.WithType(shader.ShaderTypeVertex),
		shader.WithSource(shader.TriangleVertexSource),
	)
	if err != nil {
		return nil, err
	}

	fs, err := shader.NewShader(
		shader.WithKey("triangle_frag"),
		shader.WithType(shader.ShaderTypeFragment),
		shader.WithSource(shader.TriangleFragmentSource),
	)
	if err != nil {
		return nil, err
	}

	return pipeline.NewPipeline(
		pipeline.WithKey("triangle"),
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithImmediateSize(immediateSize),
	), nil
}

func (r *renderer) Render() {
	if err := r.backend.BeginFrame(r.viewFormat); err != nil {
		if isSurfaceTransient(err) {
			// Reconfigure against the live window size; the next redraw is
			// expected to acquire cleanly.
			r.Resize()
			return
		}
		slog.Error("acquire surface texture", slog.Any("err", err))
		return
	}

	if err := r.backend.Draw(r.trianglePipeline, r.immediateBlock.Marshal()); err != nil {
		slog.Error("record triangle draw", slog.Any("err", err))
		r.backend.DiscardFrame()
		return
	}

	if err := r.backend.EndFrame(); err != nil {
		slog.Error("submit frame", slog.Any("err", err))
		r.backend.DiscardFrame()
		return
	}

	r.window.PrePresentNotify()
	r.backend.Present()
}

func (r *renderer) Resize() {
	width, height := r.window.InnerSize()
	if width == 0 || height == 0 {
		// Minimized; a zero-extent surface configuration is invalid.
		return
	}

	r.surfaceConfig.Width = width
	r.surfaceConfig.Height = height
	r.backend.ConfigureSurface(r.surfaceConfig)
	r.immediateBlock.UpdateWindowSize(width, height)
}

func (r *renderer) SurfaceFormat() wgpu.TextureFormat {
	return r.surfaceConfig.Format
}

func (r *renderer) Release() {
	if r.backend != nil {
		r.backend.Release()
		r.backend = nil
	}
}
