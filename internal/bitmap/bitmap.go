// Package bitmap provides the raw pixel buffers that occupancy maps are
// decoded into.
//
// A Bitmap stores width*height pixels of depth bytes each, row-major with no
// padding. Occupancy is decided on the first channel of every pixel only: a
// pixel is occupied (dark) when that channel is at or below the threshold.
package bitmap

import (
	"errors"
)

// DefaultThreshold is the first-channel value at or below which a pixel
// counts as occupied.
const DefaultThreshold uint8 = 127

// Free is the value written to every channel of a consumed pixel.
const Free uint8 = 0xFF

// Common errors for bitmap operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("bitmap: invalid dimensions")

	// ErrInvalidDepth is returned when the channel depth is outside 1..4.
	ErrInvalidDepth = errors.New("bitmap: invalid channel depth")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("bitmap: data buffer too small")
)

// Bitmap is a rectangular pixel buffer with 1 to 4 bytes per pixel.
//
// Bitmap is not safe for concurrent mutation. The rectangulator clears
// pixels while it scans, so a Bitmap handed to it must not be shared.
type Bitmap struct {
	data      []byte
	width     int
	height    int
	depth     int
	threshold uint8
}

// New creates a bitmap filled with Free pixels.
func New(width, height, depth int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if depth < 1 || depth > 4 {
		return nil, ErrInvalidDepth
	}

	data := make([]byte, width*height*depth)
	for i := range data {
		data[i] = Free
	}

	return &Bitmap{
		data:      data,
		width:     width,
		height:    height,
		depth:     depth,
		threshold: DefaultThreshold,
	}, nil
}

// FromRaw wraps existing pixel data without copying.
// The caller must ensure data remains valid for the lifetime of the Bitmap.
func FromRaw(data []byte, width, height, depth int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if depth < 1 || depth > 4 {
		return nil, ErrInvalidDepth
	}

	required := width * height * depth
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &Bitmap{
		data:      data[:required],
		width:     width,
		height:    height,
		depth:     depth,
		threshold: DefaultThreshold,
	}, nil
}

// Clone creates a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &Bitmap{
		data:      data,
		width:     b.width,
		height:    b.height,
		depth:     b.depth,
		threshold: b.threshold,
	}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Depth returns the number of bytes (channels) per pixel.
func (b *Bitmap) Depth() int { return b.depth }

// Data returns the raw pixel data.
func (b *Bitmap) Data() []byte { return b.data }

// Threshold returns the occupancy threshold.
func (b *Bitmap) Threshold() uint8 { return b.threshold }

// SetThreshold changes the occupancy threshold.
func (b *Bitmap) SetThreshold(t uint8) { b.threshold = t }

// InBounds reports whether (x, y) lies inside the bitmap.
func (b *Bitmap) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// pixelOffset returns the byte offset of pixel (x, y). No bounds check.
func (b *Bitmap) pixelOffset(x, y int) int {
	return (y*b.width + x) * b.depth
}

// Pixel returns the channels of pixel (x, y), or nil if out of bounds.
// The returned slice aliases the bitmap data.
func (b *Bitmap) Pixel(x, y int) []byte {
	if !b.InBounds(x, y) {
		return nil
	}
	i := b.pixelOffset(x, y)
	return b.data[i : i+b.depth]
}

// Occupied reports whether the first channel of (x, y) is at or below the
// threshold. Out-of-bounds pixels are never occupied.
func (b *Bitmap) Occupied(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.data[b.pixelOffset(x, y)] <= b.threshold
}

// SetPixel writes val to every channel of pixel (x, y).
// Out-of-range coordinates are logged as a warning and ignored.
func (b *Bitmap) SetPixel(x, y int, val uint8) {
	if !b.InBounds(x, y) {
		slogger().Warn("bitmap: pixel coordinate out of range",
			"x", x, "y", y, "width", b.width, "height", b.height)
		return
	}
	i := b.pixelOffset(x, y)
	for c := 0; c < b.depth; c++ {
		b.data[i+c] = val
	}
}

// SetRect writes val to every pixel of the w*h rectangle at (x, y).
// Pixels falling outside the bitmap are warned about and skipped.
func (b *Bitmap) SetRect(x, y, w, h int, val uint8) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.SetPixel(xx, yy, val)
		}
	}
}

// ClearRect marks the w*h rectangle at (x, y) as free.
func (b *Bitmap) ClearRect(x, y, w, h int) {
	b.SetRect(x, y, w, h, Free)
}

// CountOccupied returns the number of occupied pixels.
func (b *Bitmap) CountOccupied() int {
	n := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Occupied(x, y) {
				n++
			}
		}
	}
	return n
}
