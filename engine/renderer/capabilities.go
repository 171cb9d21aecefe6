package renderer

import "github.com/oliverbestmann/webgpu/wgpu"

// SurfaceCapabilities is the subset of adapter-reported surface capabilities
// the renderer negotiates against.
type SurfaceCapabilities struct {
	Formats      []wgpu.TextureFormat
	AlphaModes   []wgpu.CompositeAlphaMode
	PresentModes []wgpu.PresentMode
}

// findSurfaceFormat returns the first reported surface format. The adapter
// orders formats by preference, so the first entry is the best choice.
func findSurfaceFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, ErrCapabilityMissing
	}
	return formats[0], nil
}

// alphaModeRank orders composite alpha modes by preference; lower is better.
// Inherit defers compositing policy to the platform, the explicit blended
// modes come next, and Opaque is the universal fallback.
func alphaModeRank(mode wgpu.CompositeAlphaMode) int {
	switch mode {
	case wgpu.CompositeAlphaModeInherit:
		return 1
	case wgpu.CompositeAlphaModePremultiplied:
		return 2
	case wgpu.CompositeAlphaModeUnpremultiplied:
		return 3
	case wgpu.CompositeAlphaModeOpaque:
		return 4
	default:
		return 5
	}
}

// findAlphaMode returns the best-ranked reported composite alpha mode.
// Equal ranks resolve to the first seen.
func findAlphaMode(modes []wgpu.CompositeAlphaMode) (wgpu.CompositeAlphaMode, error) {
	if len(modes) == 0 {
		return wgpu.CompositeAlphaModeAuto, ErrCapabilityMissing
	}

	best := modes[0]
	for _, m := range modes[1:] {
		if alphaModeRank(m) < alphaModeRank(best) {
			best = m
		}
	}
	return best, nil
}

// choosePresentMode prefers adaptive vsync (FifoRelaxed) when the surface
// reports it, falling back to plain Fifo, which every surface supports.
func choosePresentMode(modes []wgpu.PresentMode) wgpu.PresentMode {
	for _, m := range modes {
		if m == wgpu.PresentModeFifoRelaxed {
			return m
		}
	}
	return wgpu.PresentModeFifo
}

// SrgbVariant maps a texture format to its sRGB-suffixed variant, so frame
// views gamma-encode on write. Formats that are already sRGB, or have no sRGB
// variant, are returned unchanged, making the mapping idempotent.
//
// Parameters:
//   - format: the source texture format
//
// Returns:
//   - wgpu.TextureFormat: the sRGB variant, or format itself
func SrgbVariant(format wgpu.TextureFormat) wgpu.TextureFormat {
	switch format {
	case wgpu.TextureFormatBGRA8Unorm:
		return wgpu.TextureFormatBGRA8UnormSrgb
	case wgpu.TextureFormatRGBA8Unorm:
		return wgpu.TextureFormatRGBA8UnormSrgb
	default:
		return format
	}
}
