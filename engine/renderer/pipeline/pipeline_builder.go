package pipeline

import (
	"github.com/oliverbestmann/webgpu/wgpu"

	"github.com/ferrost/rt/engine/renderer/shader"
)

// PipelineBuilderOption configures a pipeline description during construction.
type PipelineBuilderOption func(*pipeline)

// WithKey sets the pipeline's identifying label.
//
// Parameters:
//   - key: the pipeline key
func WithKey(key string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.pipelineKey = key
	}
}

// WithVertexShader sets the vertex stage shader.
//
// Parameters:
//   - s: the vertex shader
func WithVertexShader(s shader.Shader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexShader = s
	}
}

// WithFragmentShader sets the fragment stage shader.
//
// Parameters:
//   - s: the fragment shader
func WithFragmentShader(s shader.Shader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.fragmentShader = s
	}
}

// WithTopology overrides the primitive topology.
//
// Parameters:
//   - topology: the primitive topology
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithFrontFace overrides the front-facing winding order.
//
// Parameters:
//   - frontFace: the winding order
func WithFrontFace(frontFace wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = frontFace
	}
}

// WithCullMode overrides the face culling mode.
//
// Parameters:
//   - cullMode: the culling mode
func WithCullMode(cullMode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = cullMode
	}
}

// WithBlendState overrides the color target blend state.
//
// Parameters:
//   - blendState: the blend state
func WithBlendState(blendState wgpu.BlendState) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendState = blendState
	}
}

// WithWriteMask overrides the color target channel write mask.
//
// Parameters:
//   - writeMask: the write mask
func WithWriteMask(writeMask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = writeMask
	}
}

// WithImmediateSize sets the size in bytes of the immediate constant range.
//
// Parameters:
//   - size: immediate range size in bytes
func WithImmediateSize(size uint32) PipelineBuilderOption {
	return func(p *pipeline) {
		p.immediateSize = size
	}
}
