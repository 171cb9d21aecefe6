package shader

import (
	"fmt"
	"strings"
)

// AnnotationType identifies the kind of pre-processor directive found in
// annotated WGSL source.
type AnnotationType string

const (
	// AnnotationTypeInclude injects a registered WGSL struct source in place
	// of the annotation line.
	AnnotationTypeInclude AnnotationType = "include"

	// AnnotationTypeImmediate emits a var<push_constant> declaration for a
	// registered struct type.
	AnnotationTypeImmediate AnnotationType = "immediate"
)

// AnnotationArg is a single whitespace-separated argument of an annotation.
type AnnotationArg string

const (
	// AnnotationArgImmediates references the per-draw immediate block struct.
	AnnotationArgImmediates AnnotationArg = "immediates"
)

const annotationPrefix = "//@rt:"

// Annotation is one parsed pre-processor directive.
type Annotation struct {
	Type AnnotationType
	Args []AnnotationArg
	Line int
}

// parseAnnotation parses a single source line into an Annotation.
// Returns nil when the line is not an annotation at all; returns an error when
// the line is an annotation but malformed.
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, annotationPrefix) {
		return nil, nil
	}

	fields := strings.Fields(strings.TrimPrefix(trimmed, annotationPrefix))
	if len(fields) == 0 {
		return nil, fmt.Errorf("line %d: empty annotation", lineNum)
	}

	a := &Annotation{Type: AnnotationType(fields[0]), Line: lineNum}
	for _, f := range fields[1:] {
		a.Args = append(a.Args, AnnotationArg(f))
	}

	switch a.Type {
	case AnnotationTypeInclude:
		if len(a.Args) != 1 {
			return nil, fmt.Errorf("line %d: @rt:include expects exactly one argument", lineNum)
		}
	case AnnotationTypeImmediate:
		if len(a.Args) != 2 {
			return nil, fmt.Errorf("line %d: @rt:immediate expects a variable name and a struct argument", lineNum)
		}
	default:
		return nil, fmt.Errorf("line %d: unknown annotation type %q", lineNum, fields[0])
	}

	return a, nil
}
