package renderer

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"

	"github.com/ferrost/rt/engine/renderer/pipeline"
	"github.com/ferrost/rt/engine/renderer/shader"
)

func init() {
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// powerPreferenceFromEnv maps WGPU_POWER_PREF onto an adapter power
// preference, defaulting to high performance.
func powerPreferenceFromEnv() wgpu.PowerPreference {
	switch strings.ToLower(os.Getenv("WGPU_POWER_PREF")) {
	case "low":
		return wgpu.PowerPreferenceLowPower
	default:
		return wgpu.PowerPreferenceHighPerformance
	}
}

// pipelineCacheSize bounds the number of per-format render pipelines kept
// alive. The surface format is stable in practice, so the cache almost always
// holds a single entry.
const pipelineCacheSize = 4

// wgpuRendererBackendImpl implements RendererBackend on the WebGPU binding.
type wgpuRendererBackendImpl struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	capabilities  SurfaceCapabilities
	adapterLimits wgpu.Limits

	pipelines *lru.Cache[wgpu.TextureFormat, *wgpu.RenderPipeline]

	// Per-frame state held between BeginFrame and Present.
	frameTexture *wgpu.Texture
	frameView    *wgpu.TextureView
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameFormat  wgpu.TextureFormat
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

// newWGPURendererBackend runs the staged instance, surface, adapter, device
// acquisition sequence once. Each stage failure is reported as an
// *AcquisitionError naming the stage; partially acquired state is released
// before returning. The device is requested with the immediate constant
// feature enabled and its limit raised to immediateSize.
func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, immediateSize uint32) (b *wgpuRendererBackendImpl, err error) {
	b = &wgpuRendererBackendImpl{}
	defer func() {
		if err != nil {
			b.Release()
			b = nil
		}
	}()

	b.instance = wgpu.CreateInstance(nil)
	if b.instance == nil {
		return nil, &AcquisitionError{Stage: StageInstance}
	}

	b.surface = b.instance.CreateSurface(surfaceDescriptor)
	if b.surface == nil {
		return nil, &AcquisitionError{Stage: StageSurface}
	}

	adapter, aerr := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    b.surface,
		PowerPreference:      powerPreferenceFromEnv(),
		ForceFallbackAdapter: false,
	})
	if aerr != nil {
		return nil, &AcquisitionError{Stage: StageAdapter, Err: aerr}
	}
	b.adapter = adapter
	b.adapterLimits = adapter.GetLimits()

	// Check against the adapter before requesting the device, so a shortfall
	// surfaces as a limit error rather than a generic device stage failure.
	if max := b.adapterLimits.MaxPushConstantSize; max < immediateSize {
		return nil, fmt.Errorf("%w: adapter allows %d bytes, need %d", ErrImmediateLimitTooLow, max, immediateSize)
	}

	limits := wgpu.DefaultLimits()
	limits.MaxPushConstantSize = immediateSize

	device, derr := b.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "Renderer Device",
		RequiredFeatures: []wgpu.FeatureName{wgpu.NativeFeaturePushConstants},
		RequiredLimits:   &limits,
	})
	if derr != nil {
		return nil, &AcquisitionError{Stage: StageDevice, Err: derr}
	}
	b.device = device
	b.queue = device.GetQueue()

	caps := b.surface.GetCapabilities(b.adapter)
	b.capabilities = SurfaceCapabilities{
		Formats:      caps.Formats,
		AlphaModes:   caps.AlphaModes,
		PresentModes: caps.PresentModes,
	}

	b.pipelines, _ = lru.NewWithEvict[wgpu.TextureFormat, *wgpu.RenderPipeline](pipelineCacheSize, releasePipelineOnEviction)

	return b, nil
}

func releasePipelineOnEviction(_ wgpu.TextureFormat, p *wgpu.RenderPipeline) {
	p.Release()
}

func (b *wgpuRendererBackendImpl) Capabilities() SurfaceCapabilities {
	return b.capabilities
}

func (b *wgpuRendererBackendImpl) MaxImmediateSize() uint32 {
	return b.adapterLimits.MaxPushConstantSize
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(config *wgpu.SurfaceConfiguration) {
	b.surface.Configure(b.device, config)
}

// classifyAcquireError maps a GetCurrentTexture failure onto the typed
// surface errors. The binding reports the native status only through the
// error text, so this is the one place the taxonomy matches on strings.
func classifyAcquireError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)
	default:
		return err
	}
}

func (b *wgpuRendererBackendImpl) BeginFrame(viewFormat wgpu.TextureFormat) error {
	if b.frameTexture != nil {
		return errors.New("previous frame not yet presented")
	}

	texture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return classifyAcquireError(err)
	}

	view, err := texture.CreateView(&wgpu.TextureViewDescriptor{
		Label:           "Frame View",
		Format:          viewFormat,
		Dimension:       wgpu.TextureViewDimension2D,
		BaseMipLevel:    0,
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: 1,
		Aspect:          wgpu.TextureAspectAll,
	})
	if err != nil {
		texture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		texture.Release()
		return err
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Frame Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
			},
		},
	})

	b.frameTexture = texture
	b.frameView = view
	b.frameEncoder = encoder
	b.framePass = pass
	b.frameFormat = viewFormat
	return nil
}

func (b *wgpuRendererBackendImpl) Draw(p pipeline.Pipeline, immediateData []byte) error {
	if b.framePass == nil {
		return errors.New("no frame in progress")
	}

	renderPipeline, err := b.ensurePipeline(p, b.frameFormat)
	if err != nil {
		return err
	}

	b.framePass.SetPipeline(renderPipeline)
	b.framePass.SetPushConstants(wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, 0, immediateData)
	b.framePass.Draw(3, 1, 0, 0)
	return nil
}

func (b *wgpuRendererBackendImpl) EndFrame() error {
	if b.framePass == nil {
		return errors.New("no frame in progress")
	}

	b.framePass.End()
	b.framePass = nil

	commandBuffer, err := b.frameEncoder.Finish(nil)
	b.frameEncoder.Release()
	b.frameEncoder = nil
	if err != nil {
		return err
	}

	b.queue.Submit(commandBuffer)
	commandBuffer.Release()
	return nil
}

// DiscardFrame drops the frame in flight without submitting or presenting.
// Called when recording fails after a successful acquire; nothing reaches the
// queue and the acquired texture is released unpresented.
func (b *wgpuRendererBackendImpl) DiscardFrame() {
	if b.framePass != nil {
		b.framePass.End()
		b.framePass = nil
	}
	if b.frameEncoder != nil {
		b.frameEncoder.Release()
		b.frameEncoder = nil
	}
	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	if b.frameTexture != nil {
		b.frameTexture.Release()
		b.frameTexture = nil
	}
}

func (b *wgpuRendererBackendImpl) Present() {
	if b.frameTexture == nil {
		return
	}

	b.surface.Present()

	b.frameView.Release()
	b.frameView = nil
	b.frameTexture.Release()
	b.frameTexture = nil
}

// ensurePipeline returns the render pipeline specialized for the given target
// format, building and caching it on first use. If the surface ever reports a
// new format after reconfiguration, the next frame builds a matching pipeline
// instead of drawing with a stale one.
func (b *wgpuRendererBackendImpl) ensurePipeline(p pipeline.Pipeline, format wgpu.TextureFormat) (*wgpu.RenderPipeline, error) {
	if cached, ok := b.pipelines.Get(format); ok {
		return cached, nil
	}

	built, err := b.buildPipeline(p, format)
	if err != nil {
		return nil, fmt.Errorf("build pipeline %q: %w", p.PipelineKey(), err)
	}
	b.pipelines.Add(format, built)
	return built, nil
}

func (b *wgpuRendererBackendImpl) buildPipeline(p pipeline.Pipeline, format wgpu.TextureFormat) (*wgpu.RenderPipeline, error) {
	vertexShader := p.Shader(shader.ShaderTypeVertex)
	fragmentShader := p.Shader(shader.ShaderTypeFragment)
	if vertexShader == nil || fragmentShader == nil {
		return nil, errors.New("pipeline requires both a vertex and a fragment shader")
	}

	vs, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: vertexShader.Key(),
		WGSLSource: &wgpu.ShaderSourceWGSL{
			Code: vertexShader.Source(),
		},
	})
	if err != nil {
		return nil, err
	}
	defer vs.Release()

	fs, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: fragmentShader.Key(),
		WGSLSource: &wgpu.ShaderSourceWGSL{
			Code: fragmentShader.Source(),
		},
	})
	if err != nil {
		return nil, err
	}
	defer fs.Release()

	// No bind groups; the immediate range is the pipeline's only resource
	// interface, visible to both stages.
	layout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: p.PipelineKey() + " Layout",
		PushConstantRanges: []wgpu.PushConstantRange{
			{
				Stages: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Start:  0,
				End:    p.ImmediateSize(),
			},
		},
	})
	if err != nil {
		return nil, err
	}
	defer layout.Release()

	blend := p.BlendState()
	return b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey(),
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: vertexShader.EntryPoint(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: fragmentShader.EntryPoint(),
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     &blend,
					WriteMask: p.WriteMask(),
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.Topology(),
			FrontFace: p.FrontFace(),
			CullMode:  p.CullMode(),
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
}

// Release destroys all GPU objects in reverse acquisition order. Safe to call
// on a partially constructed backend.
func (b *wgpuRendererBackendImpl) Release() {
	b.DiscardFrame()
	if b.pipelines != nil {
		b.pipelines.Purge()
		b.pipelines = nil
	}
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
