package common

import "golang.org/x/exp/constraints"

// NormalizedAspect returns the aspect ratio of a width/height pair with the
// smaller dimension normalized to exactly 1.0, so an 800x600 window yields
// {1.333, 1} and a 600x800 window yields {1, 1.333}. Both components are
// always >= 1. A degenerate pair (either dimension zero) yields {1, 1}.
//
// Parameters:
//   - width: horizontal dimension in pixels
//   - height: vertical dimension in pixels
//
// Returns:
//   - [2]float32: the normalized aspect ratio pair
func NormalizedAspect[T constraints.Integer](width, height T) [2]float32 {
	if width == 0 || height == 0 {
		return [2]float32{1, 1}
	}
	if width < height {
		return [2]float32{1, float32(height) / float32(width)}
	}
	return [2]float32{float32(width) / float32(height), 1}
}
