package pipeline

import (
	"github.com/oliverbestmann/webgpu/wgpu"

	"github.com/ferrost/rt/engine/renderer/shader"
)

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	pipelineKey string

	vertexShader   shader.Shader
	fragmentShader shader.Shader

	topology  wgpu.PrimitiveTopology
	frontFace wgpu.FrontFace
	cullMode  wgpu.CullMode

	blendState wgpu.BlendState
	writeMask  wgpu.ColorWriteMask

	immediateSize uint32
}

// Pipeline is an immutable render pipeline description: the shader pair, the
// fixed-function state, and the size of the immediate constant range visible
// to both stages. The backend specializes it per render-target format.
type Pipeline interface {
	// PipelineKey returns the pipeline's identifying label.
	PipelineKey() string

	// Shader returns the shader for the given stage, or nil if unset.
	//
	// Parameters:
	//   - shaderType: the pipeline stage to retrieve
	//
	// Returns:
	//   - shader.Shader: the shader for that stage, or nil
	Shader(shaderType shader.ShaderType) shader.Shader

	// Topology returns the primitive topology.
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the winding order considered front-facing.
	FrontFace() wgpu.FrontFace

	// CullMode returns the face culling mode.
	CullMode() wgpu.CullMode

	// BlendState returns the color target blend state.
	BlendState() wgpu.BlendState

	// WriteMask returns the color target channel write mask.
	WriteMask() wgpu.ColorWriteMask

	// ImmediateSize returns the size in bytes of the immediate constant range
	// [0, ImmediateSize) shared by the vertex and fragment stages.
	ImmediateSize() uint32
}

var _ Pipeline = &pipeline{}

// NewPipeline creates an immutable pipeline description with the provided
// options. Defaults: triangle list topology, counter-clockwise front face,
// back-face culling, Replace blending, and the full channel write mask.
//
// Parameters:
//   - options: functional options for pipeline configuration
//
// Returns:
//   - Pipeline: the newly created pipeline description
func NewPipeline(options ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		topology:   wgpu.PrimitiveTopologyTriangleList,
		frontFace:  wgpu.FrontFaceCCW,
		cullMode:   wgpu.CullModeBack,
		blendState: wgpu.BlendStateReplace,
		writeMask:  wgpu.ColorWriteMaskAll,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	default:
		return nil
	}
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) BlendState() wgpu.BlendState {
	return p.blendState
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipeline) ImmediateSize() uint32 {
	return p.immediateSize
}
