package loaders

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	xdraw "golang.org/x/image/draw"

	"github.com/KaminariOS/ray-tracing/pkg/core"
	"github.com/KaminariOS/ray-tracing/pkg/material"
)

// BinaryLoader resolves an asset name to its raw bytes. The caller decides
// where assets live; the renderer core only ever sees decoded bitmaps.
type BinaryLoader func(name string) ([]byte, error)

// FileLoader returns a BinaryLoader reading assets from the given directory
func FileLoader(dir string) BinaryLoader {
	return func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	}
}

// LoadImage decodes an asset into an RGBA8 bitmap, flipped vertically so
// that row 0 is the image bottom, matching the texture V axis
func LoadImage(load BinaryLoader, name string) (*image.RGBA, error) {
	data, err := load(name)
	if err != nil {
		return nil, fmt.Errorf("loaders: read %s: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loaders: decode %s: %w", name, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Copy(rgba, image.Point{}, img, bounds, xdraw.Src, nil)
	flipVertical(rgba)

	return rgba, nil
}

// flipVertical mirrors the bitmap rows in place
func flipVertical(img *image.RGBA) {
	height := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < height/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(height-1-y)*img.Stride : (height-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// NewImageTexture loads an asset into an image texture. A missing or
// undecodable asset degrades to the cyan sentinel so the render continues.
func NewImageTexture(load BinaryLoader, name string, logger core.Logger) material.Texture {
	img, err := LoadImage(load, name)
	if err != nil {
		if logger != nil {
			logger.Printf("texture %q unavailable, using sentinel: %v", name, err)
		}
		return material.NewSolidColor(core.NewVec3(0, 1, 1))
	}
	return material.NewImageTexture(img)
}
