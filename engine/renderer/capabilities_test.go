package renderer

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestFindSurfaceFormat(t *testing.T) {
	format, err := findSurfaceFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatRGBA8Unorm,
	})
	if err != nil {
		t.Fatalf("findSurfaceFormat returned error: %v", err)
	}
	if format != wgpu.TextureFormatBGRA8Unorm {
		t.Errorf("format = %v, want first reported format", format)
	}
}

func TestFindSurfaceFormatEmpty(t *testing.T) {
	if _, err := findSurfaceFormat(nil); !errors.Is(err, ErrCapabilityMissing) {
		t.Errorf("error = %v, want ErrCapabilityMissing", err)
	}
}

func TestFindAlphaMode(t *testing.T) {
	tests := []struct {
		name  string
		modes []wgpu.CompositeAlphaMode
		want  wgpu.CompositeAlphaMode
	}{
		{
			"inherit beats opaque",
			[]wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque, wgpu.CompositeAlphaModeInherit},
			wgpu.CompositeAlphaModeInherit,
		},
		{
			"premultiplied beats postmultiplied and opaque",
			[]wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeUnpremultiplied, wgpu.CompositeAlphaModePremultiplied, wgpu.CompositeAlphaModeOpaque},
			wgpu.CompositeAlphaModePremultiplied,
		},
		{
			"opaque beats unranked",
			[]wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeAuto, wgpu.CompositeAlphaModeOpaque},
			wgpu.CompositeAlphaModeOpaque,
		},
		{
			"single unranked mode still selected",
			[]wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeAuto},
			wgpu.CompositeAlphaModeAuto,
		},
		{
			"equal ranks resolve to first seen",
			[]wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque, wgpu.CompositeAlphaModeOpaque},
			wgpu.CompositeAlphaModeOpaque,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findAlphaMode(tt.modes)
			if err != nil {
				t.Fatalf("findAlphaMode returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("findAlphaMode(%v) = %v, want %v", tt.modes, got, tt.want)
			}
		})
	}
}

func TestFindAlphaModeEmpty(t *testing.T) {
	if _, err := findAlphaMode(nil); !errors.Is(err, ErrCapabilityMissing) {
		t.Errorf("error = %v, want ErrCapabilityMissing", err)
	}
}

func TestChoosePresentMode(t *testing.T) {
	relaxed := []wgpu.PresentMode{wgpu.PresentModeImmediate, wgpu.PresentModeFifoRelaxed, wgpu.PresentModeFifo}
	if got := choosePresentMode(relaxed); got != wgpu.PresentModeFifoRelaxed {
		t.Errorf("choosePresentMode = %v, want FifoRelaxed when reported", got)
	}

	plain := []wgpu.PresentMode{wgpu.PresentModeImmediate, wgpu.PresentModeFifo}
	if got := choosePresentMode(plain); got != wgpu.PresentModeFifo {
		t.Errorf("choosePresentMode = %v, want Fifo fallback", got)
	}

	if got := choosePresentMode(nil); got != wgpu.PresentModeFifo {
		t.Errorf("choosePresentMode(nil) = %v, want Fifo fallback", got)
	}
}

func TestSrgbVariant(t *testing.T) {
	tests := []struct {
		name   string
		format wgpu.TextureFormat
		want   wgpu.TextureFormat
	}{
		{"bgra gets suffix", wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb},
		{"rgba gets suffix", wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb},
		{"already srgb unchanged", wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb},
		{"no srgb variant unchanged", wgpu.TextureFormatRGBA16Float, wgpu.TextureFormatRGBA16Float},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SrgbVariant(tt.format); got != tt.want {
				t.Errorf("SrgbVariant(%v) = %v, want %v", tt.format, got, tt.want)
			}
			// Applying the mapping twice must not change the result.
			if got := SrgbVariant(SrgbVariant(tt.format)); got != tt.want {
				t.Errorf("SrgbVariant is not idempotent for %v", tt.format)
			}
		})
	}
}
