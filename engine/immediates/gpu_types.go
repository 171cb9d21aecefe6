package immediates

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/ferrost/rt/common"
)

// GPUImmediatesSource is the canonical WGSL definition of the Immediates
// struct. The shader pre-processor injects this source wherever a shader
// references the immediate block, keeping the CPU and GPU layouts in one
// place.
//
//go:embed assets/immediates.wgsl
var GPUImmediatesSource string

// GPUImmediates is the per-draw immediate constant block pushed into the
// command stream on every draw. Matches the WGSL Immediates struct layout
// exactly: 16 bytes, contiguous, no padding.
type GPUImmediates struct {
	WindowSize  [2]uint32  // offset 0: current window size in pixels (vec2<u32>)
	AspectRatio [2]float32 // offset 8: aspect ratio with the minor axis normalized to 1.0 (vec2<f32>)
}

// NewGPUImmediates creates a GPUImmediates block for the given window size.
// The aspect ratio is derived from the dimensions.
//
// Parameters:
//   - width: window width in pixels
//   - height: window height in pixels
//
// Returns:
//   - GPUImmediates: the initialized immediate block
func NewGPUImmediates(width, height uint32) GPUImmediates {
	var g GPUImmediates
	g.UpdateWindowSize(width, height)
	return g
}

// UpdateWindowSize stores the new window size and recomputes the aspect ratio
// so both values stay coherent. Called on every resize.
//
// Parameters:
//   - width: new window width in pixels
//   - height: new window height in pixels
func (g *GPUImmediates) UpdateWindowSize(width, height uint32) {
	g.WindowSize = [2]uint32{width, height}
	g.AspectRatio = common.NormalizedAspect(width, height)
}

// Size returns the size of the GPUImmediates struct in bytes (16).
func (g *GPUImmediates) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the immediate block to little-endian bytes matching the
// WGSL struct layout, suitable for pushing at offset 0 of the immediate range.
//
// Returns:
//   - []byte: the serialized block, exactly Size() bytes
func (g *GPUImmediates) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:4], g.WindowSize[0])
	binary.LittleEndian.PutUint32(buf[4:8], g.WindowSize[1])
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.AspectRatio[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.AspectRatio[1]))
	return buf
}
