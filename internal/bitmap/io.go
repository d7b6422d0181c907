package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("bitmap: empty data")

// Load decodes the image file at path into a new bitmap.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func Load(path string) (*Bitmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("bitmap: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes decodes an in-memory image, auto-detecting the format.
func LoadBytes(data []byte) (*Bitmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*Bitmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bitmap: decode: %w", err)
	}

	b, err := FromImage(img)
	if err != nil {
		return nil, err
	}
	slogger().Debug("bitmap: decoded image",
		"format", format, "width", b.width, "height", b.height, "depth", b.depth)
	return b, nil
}

// FromImage copies img into a new bitmap. Grayscale images keep one channel;
// everything else is converted to non-premultiplied RGBA with four.
func FromImage(img image.Image) (*Bitmap, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}

	if g, ok := img.(*image.Gray); ok {
		data := make([]byte, w*h)
		for y := 0; y < h; y++ {
			row := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(data[y*w:(y+1)*w], g.Pix[row:row+w])
		}
		return FromRaw(data, w, h, 1)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return FromRaw(dst.Pix, w, h, 4)
}

// ToImage converts the bitmap to a standard image for inspection or
// encoding. One-channel bitmaps become *image.Gray, others *image.NRGBA.
func (b *Bitmap) ToImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)
	if b.depth == 1 {
		g := image.NewGray(rect)
		copy(g.Pix, b.data)
		return g
	}

	dst := image.NewNRGBA(rect)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			src := b.data[b.pixelOffset(x, y):]
			i := dst.PixOffset(x, y)
			switch b.depth {
			case 2: // gray + alpha
				dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = src[0], src[0], src[0], src[1]
			case 3:
				dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = src[0], src[1], src[2], 0xFF
			default:
				copy(dst.Pix[i:i+4], src[:4])
			}
		}
	}
	return dst
}
