package material

import (
	"image"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// sentinelCyan is substituted when an image asset is missing or undecodable
var sentinelCyan = core.NewVec3(0, 1, 1)

// ImageTexture looks colors up in an RGBA8 bitmap. The bitmap is stored
// vertically flipped so that v=0 addresses the bottom row directly.
type ImageTexture struct {
	Bitmap *image.RGBA
}

// NewImageTexture creates a texture over the given pre-flipped bitmap
func NewImageTexture(bitmap *image.RGBA) *ImageTexture {
	return &ImageTexture{Bitmap: bitmap}
}

// Value samples the bitmap at the UV coordinates with nearest-neighbor
// filtering. A missing bitmap yields the cyan sentinel.
func (t *ImageTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Bitmap == nil {
		return sentinelCyan
	}
	bounds := t.Bitmap.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return sentinelCyan
	}

	u := clamp01(uv.X)
	v := clamp01(uv.Y)

	x := int(u * float64(width))
	y := int(v * float64(height))
	if x >= width {
		x = width - 1
	}
	if y >= height {
		y = height - 1
	}

	offset := t.Bitmap.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
	const colorScale = 1.0 / 255.0
	return core.NewVec3(
		float64(t.Bitmap.Pix[offset])*colorScale,
		float64(t.Bitmap.Pix[offset+1])*colorScale,
		float64(t.Bitmap.Pix[offset+2])*colorScale,
	)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
