package stage

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gogpu/stage/internal/bitmap"
	"github.com/gogpu/stage/internal/cache"
)

// PixelSource is a rectangular grid of cells that are either occupied or
// free. RectsFromPixels consumes it: every cell that ends up in a rectangle
// is cleared through ClearRect.
type PixelSource interface {
	Width() int
	Height() int
	Occupied(x, y int) bool
	ClearRect(x, y, w, h int)
}

// RectSet is the result of rectangulating an image.
type RectSet struct {
	// Rects are in conventional axes: y grows upward from the bottom row.
	Rects []RotRect

	// Width and Height are the image dimensions in pixels.
	Width, Height int
}

// Clone returns a copy of s that does not share its rectangle slice.
func (s RectSet) Clone() RectSet {
	rects := make([]RotRect, len(s.Rects))
	copy(rects, s.Rects)
	return RectSet{Rects: rects, Width: s.Width, Height: s.Height}
}

// rectAllocationUnit is the initial capacity of the output slice and the
// fixed number of entries it grows by.
const rectAllocationUnit = 1000

// RectsFromPixels decomposes the occupied cells of src into non-overlapping
// axis-aligned rectangles whose union is exactly the occupied set.
//
// Rows are scanned top to bottom and columns left to right. An occupied
// cell starts a rectangle that extends right along the row while cells stay
// occupied; its height is the smallest run of occupied cells found below
// any of its columns. The rectangle is cleared from src before scanning
// continues, so every cell is consumed exactly once. The decomposition is
// greedy and not minimal in rectangle count.
//
// Rectangles are reported with y inverted: Pose.Y = height - (row + h).
// Pose.A is always 0.
func RectsFromPixels(src PixelSource) RectSet {
	imgWidth, imgHeight := src.Width(), src.Height()
	rects := make([]RotRect, 0, rectAllocationUnit)

	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			if !src.Occupied(x, y) {
				continue
			}

			startx := x
			height := imgHeight - y
			for ; x < imgWidth && src.Occupied(x, y); x++ {
				depth := 1
				for y+depth < imgHeight && src.Occupied(x, y+depth) {
					depth++
				}
				height = min(height, depth)
			}
			width := x - startx

			src.ClearRect(startx, y, width, height)

			if len(rects) == cap(rects) {
				grown := make([]RotRect, len(rects), cap(rects)+rectAllocationUnit)
				copy(grown, rects)
				rects = grown
			}
			rects = append(rects, RotRect{
				Pose: Pose{X: float64(startx), Y: float64(imgHeight - (y + height))},
				Size: Size{X: float64(width), Y: float64(height)},
			})
		}
	}

	return RectSet{Rects: rects, Width: imgWidth, Height: imgHeight}
}

// RectsFromImage rectangulates a private copy of img; img is not modified.
// A pixel is occupied when its first channel (red, or gray) is at or below
// bitmap.DefaultThreshold (127).
func RectsFromImage(img image.Image) (RectSet, error) {
	bm, err := bitmap.FromImage(img)
	if err != nil {
		return RectSet{}, fmt.Errorf("stage: rectangulate image: %w", err)
	}
	return RectsFromPixels(bm), nil
}

// rectCacheCapacity bounds the number of decoded maps kept by
// RectsFromImageFile.
const rectCacheCapacity = 64

// rectCacheKey identifies one version of an image file.
type rectCacheKey struct {
	path    string
	modTime int64
	size    int64
}

var rectCache = cache.New[rectCacheKey, RectSet](rectCacheCapacity)

// RectsFromImageFile decodes the image at path (PNG, JPEG, GIF, BMP, TIFF
// or WebP) and rectangulates it like RectsFromImage.
//
// Results are cached per path and file modification time, so many models
// sharing one map decode it once. Every call returns its own copy of the
// rectangles, safe to pass to NormalizeRects.
func RectsFromImageFile(path string) (RectSet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return RectSet{}, fmt.Errorf("stage: rectangulate file: %w", err)
	}

	key := rectCacheKey{
		path:    filepath.Clean(path),
		modTime: info.ModTime().UnixNano(),
		size:    info.Size(),
	}
	if set, ok := rectCache.Get(key); ok {
		Logger().Debug("stage: rect cache hit", "path", key.path, "rects", len(set.Rects))
		return set.Clone(), nil
	}

	bm, err := bitmap.Load(key.path)
	if err != nil {
		return RectSet{}, fmt.Errorf("stage: rectangulate file: %w", err)
	}

	set := RectsFromPixels(bm)
	rectCache.Set(key, set)
	Logger().Debug("stage: rectangulated image",
		"path", key.path, "width", set.Width, "height", set.Height, "rects", len(set.Rects))

	return set.Clone(), nil
}
