package shader

import (
	_ "embed"
	"fmt"

	"github.com/ferrost/rt/common"
)

// ShaderType identifies the pipeline stage a shader targets.
type ShaderType int

const (
	ShaderTypeVertex ShaderType = iota
	ShaderTypeFragment
)

// TriangleVertexSource is the annotated WGSL source for the full-screen
// triangle vertex stage (entry point vs_main). The vertex shader scales the
// synthesized positions by the pushed aspect ratio.
//
//go:embed assets/triangle_vert.wgsl
var TriangleVertexSource string

// TriangleFragmentSource is the annotated WGSL source for the triangle
// fragment stage (entry point fs_main). The fragment shader derives its
// gradient from the pushed window size.
//
//go:embed assets/triangle_frag.wgsl
var TriangleFragmentSource string

// shader is the implementation of the Shader interface.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	entryPoint string

	preProcessor PreProcessor
}

// Shader is a fully pre-processed WGSL shader ready for module creation.
type Shader interface {
	// Key returns the shader's identifying label.
	Key() string

	// Source returns the resolved WGSL source with all annotations expanded.
	Source() string

	// Type returns the pipeline stage this shader targets.
	Type() ShaderType

	// EntryPoint returns the entry point function name.
	EntryPoint() string
}

var _ Shader = &shader{}

// NewShader builds a Shader from annotated WGSL source, resolving all
// annotations through the pre-processor. The entry point defaults to vs_main
// for vertex shaders and fs_main for fragment shaders.
//
// Parameters:
//   - options: functional options for shader configuration
//
// Returns:
//   - Shader: the newly created shader
//   - error: error if pre-processing fails
func NewShader(options ...ShaderBuilderOption) (Shader, error) {
	s := &shader{}
	for _, opt := range options {
		opt(s)
	}

	if s.preProcessor == nil {
		s.preProcessor = NewPreProcessor()
	}
	s.entryPoint = common.Coalesce(s.entryPoint, defaultEntryPoint(s.shaderType))

	processed, err := s.preProcessor.Process(s.source)
	if err != nil {
		return nil, fmt.Errorf("pre-process shader %q: %w", s.key, err)
	}
	s.source = processed

	return s, nil
}

// defaultEntryPoint returns the conventional entry point name for a stage.
func defaultEntryPoint(t ShaderType) string {
	if t == ShaderTypeFragment {
		return "fs_main"
	}
	return "vs_main"
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) Type() ShaderType {
	return s.shaderType
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}
