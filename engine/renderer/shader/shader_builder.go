package shader

// ShaderBuilderOption configures a shader during construction.
type ShaderBuilderOption func(*shader)

// WithKey sets the shader's identifying label, used for module labels and
// error messages.
//
// Parameters:
//   - key: the shader key
func WithKey(key string) ShaderBuilderOption {
	return func(s *shader) {
		s.key = key
	}
}

// WithSource sets the annotated WGSL source text.
//
// Parameters:
//   - source: annotated WGSL source
func WithSource(source string) ShaderBuilderOption {
	return func(s *shader) {
		s.source = source
	}
}

// WithType sets the pipeline stage this shader targets.
//
// Parameters:
//   - shaderType: ShaderTypeVertex or ShaderTypeFragment
func WithType(shaderType ShaderType) ShaderBuilderOption {
	return func(s *shader) {
		s.shaderType = shaderType
	}
}

// WithEntryPoint overrides the default entry point function name.
//
// Parameters:
//   - entryPoint: the entry point function name
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = entryPoint
	}
}

// WithPreProcessor substitutes the pre-processor used to resolve annotations.
//
// Parameters:
//   - pp: the pre-processor to use
func WithPreProcessor(pp PreProcessor) ShaderBuilderOption {
	return func(s *shader) {
		s.preProcessor = pp
	}
}
