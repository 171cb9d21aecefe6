// Package shader provides annotated WGSL shader sources and the pre-processor
// that resolves them. Shaders reference shared GPU struct definitions through
// //@rt: annotations instead of duplicating them; the pre-processor replaces
// each annotation with the embedded canonical source (or a generated
// var<push_constant> declaration) so the runtime only ever sees fully
// resolved WGSL text.
package shader

import (
	"fmt"
	"strings"

	"github.com/ferrost/rt/engine/immediates"
)

// registryEntry binds an annotation argument to its canonical WGSL source and
// the struct type name that source declares.
type registryEntry struct {
	source   string
	typeName string
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	structRegistry map[AnnotationArg]registryEntry
}

// PreProcessor resolves //@rt: annotations in WGSL source text.
type PreProcessor interface {
	// Process scans source line by line, replacing each annotation with its
	// resolved WGSL. Non-annotation lines pass through untouched.
	//
	// Parameters:
	//   - source: annotated WGSL source text
	//
	// Returns:
	//   - string: the fully resolved WGSL source
	//   - error: error if an annotation is malformed or references an unregistered struct
	Process(source string) (string, error)
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the built-in struct registry.
//
// Returns:
//   - PreProcessor: the newly created pre-processor
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		structRegistry: map[AnnotationArg]registryEntry{
			AnnotationArgImmediates: {
				source:   immediates.GPUImmediatesSource,
				typeName: "Immediates",
			},
		},
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case AnnotationTypeInclude:
			entry, ok := p.structRegistry[a.Args[0]]
			if !ok {
				return "", fmt.Errorf("line %d: @rt:include references unregistered struct %q", a.Line, a.Args[0])
			}
			out = append(out, strings.TrimRight(entry.source, "\n"))
		case AnnotationTypeImmediate:
			entry, ok := p.structRegistry[a.Args[1]]
			if !ok {
				return "", fmt.Errorf("line %d: @rt:immediate references unregistered struct %q", a.Line, a.Args[1])
			}
			out = append(out, fmt.Sprintf("var<push_constant> %s: %s;", a.Args[0], entry.typeName))
		}
	}

	return strings.Join(out, "\n"), nil
}
