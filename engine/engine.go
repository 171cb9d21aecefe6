package engine

import (
	"fmt"

	"github.com/ferrost/rt/engine/profiler"
	"github.com/ferrost/rt/engine/renderer"
	"github.com/ferrost/rt/engine/window"
)

// engine is the implementation of the Engine interface.
// Owns the window and the renderer and drives both from the single host
// thread: the window's message loop iteration is the redraw request.
type engine struct {
	window   window.Window
	renderer renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	rendererOptions []renderer.RendererBuilderOption
}

// Engine is the event host: it wires window lifecycle events to the renderer
// and runs the cooperative message loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the underlying renderer.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// EnableProfiler enables per-second frame statistics logging.
	EnableProfiler()

	// DisableProfiler disables frame statistics logging.
	DisableProfiler()

	// Run blocks in the window message loop, rendering one frame per
	// iteration, until the window closes.
	Run()

	// Release tears down the renderer, then closes the window.
	Release()
}

var _ Engine = &engine{}

// NewEngine creates the event host: constructs the renderer over the window
// and wires the resize and per-iteration redraw callbacks. If no window is
// supplied, a default one is created.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: error if renderer construction fails
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		profiler: profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	createdWindow := false
	if e.window == nil {
		e.window = window.NewWindow()
		createdWindow = true
	}

	r, err := renderer.NewRenderer(e.window, e.rendererOptions...)
	if err != nil {
		// A caller-supplied window stays with the caller; one created here
		// must not leak its platform resources.
		if createdWindow {
			_ = e.window.Close()
		}
		return nil, fmt.Errorf("initialize renderer: %w", err)
	}
	e.renderer = r

	// The window updates its stored size before firing the callback; the
	// renderer re-reads the inner size itself, so the callback only schedules
	// the reconfiguration.
	e.window.SetResizeCallback(func(width, height int) {
		e.renderer.Resize()
	})

	e.window.SetUpdateCallback(func() {
		e.renderer.Render()
		if e.profilingEnabled {
			e.profiler.Tick()
		}
	})

	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

// EnableProfiler enables per-second frame statistics logging.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables frame statistics logging.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Run() {
	e.window.ProcessMessages()
}

// Release tears down in reverse construction order: the renderer's GPU
// resources first, the window last.
func (e *engine) Release() {
	if e.renderer != nil {
		e.renderer.Release()
		e.renderer = nil
	}
	if e.window != nil {
		_ = e.window.Close()
		e.window = nil
	}
}
