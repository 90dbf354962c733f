package renderer

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KaminariOS/ray-tracing/pkg/core"
	"github.com/KaminariOS/ray-tracing/pkg/scene"
)

// Renderer accumulates multisampled radiance estimates into a caller-owned
// RGBA8 frame buffer. Rows are rendered in parallel; within a row pixels
// are sequential and each row owns its own random generator.
type Renderer struct {
	Width  int
	Height int

	Multisample int
	MaxDepth    int
	Seed        int64

	// Dirty gates Draw: a clean renderer leaves the frame untouched
	Dirty bool

	Logger core.Logger

	camera *Camera
	scene  *scene.Scene
}

// NewRenderer creates a renderer over the given scene and camera
func NewRenderer(width, height int, sc *scene.Scene, camera *Camera) *Renderer {
	return &Renderer{
		Width:       width,
		Height:      height,
		Multisample: 4,
		MaxDepth:    10,
		Dirty:       true,
		Logger:      log.Default(),
		camera:      camera,
		scene:       sc,
	}
}

// Draw renders the scene into frame, a 4·Width·Height byte buffer of
// [R,G,B,255] rows ordered top-down. A renderer that is not dirty returns
// immediately.
func (r *Renderer) Draw(frame []byte) {
	if !r.Dirty {
		return
	}
	r.Dirty = false

	if len(frame) != 4*r.Width*r.Height {
		panic(fmt.Sprintf("renderer: frame buffer is %d bytes, want %d", len(frame), 4*r.Width*r.Height))
	}

	start := time.Now()
	rowLen := 4 * r.Width

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())

	for row := 0; row < r.Height; row++ {
		rowSlice := frame[row*rowLen : (row+1)*rowLen]
		// Buffer row 0 is the image top; the camera's t axis grows upward
		y := r.Height - 1 - row
		rng := rand.New(rand.NewSource(r.Seed + int64(row)))
		group.Go(func() error {
			r.renderRow(rowSlice, y, rng)
			return nil
		})
	}
	// Workers never return errors; Wait is the frame-completion join
	_ = group.Wait()

	if r.Logger != nil {
		r.Logger.Printf("rendered %dx%d, %d samples, depth %d in %v",
			r.Width, r.Height, r.Multisample, r.MaxDepth, time.Since(start))
	}
}

// renderRow fills one row of the frame buffer. y counts from the image
// bottom.
func (r *Renderer) renderRow(row []byte, y int, rng *rand.Rand) {
	for x := 0; x < r.Width; x++ {
		var sum core.Vec3
		for s := 0; s < r.Multisample; s++ {
			u, v := r.normCoords(x, y, rng)
			ray := r.camera.GetRay(u, v, rng)
			sum = sum.Add(sanitize(r.rayColor(ray, r.MaxDepth, rng)))
		}
		color := sum.Multiply(1 / float64(r.Multisample))

		pixel := row[4*x : 4*x+4]
		pixel[0] = floatToByte(color.X)
		pixel[1] = floatToByte(color.Y)
		pixel[2] = floatToByte(color.Z)
		pixel[3] = 0xff
	}
}

// normCoords maps a pixel to jittered viewport coordinates. With a single
// sample per pixel the jitter is dropped for a stable image.
func (r *Renderer) normCoords(x, y int, rng *rand.Rand) (float64, float64) {
	var xOffset, yOffset float64
	if r.Multisample != 1 {
		xOffset = rng.Float64()
		yOffset = rng.Float64()
	}
	u := (float64(x) + xOffset) / float64(r.Width-1)
	v := (float64(y) + yOffset) / float64(r.Height-1)
	return u, v
}

// rayColor estimates radiance along the ray with at most depth bounces.
// Diffuse bounces mix the material PDF with a PDF over the scene's
// emitters and weight by the balance convention of the PDFs (cosine PDFs
// report 2·cosθ, hence the cosθ·2π divisor structure).
func (r *Renderer) rayColor(ray core.Ray, depth int, rng *rand.Rand) core.Vec3 {
	if depth == 0 {
		return core.Vec3{}
	}

	hit, ok := r.scene.World.Hit(ray, 1e-3, math.Inf(1), rng)
	if !ok {
		return r.scene.Background
	}

	var emitted core.Vec3
	if emitter, isEmitter := hit.Material.(core.Emitter); isEmitter {
		emitted = emitter.Emit(ray, hit)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, rng)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular() {
		// Specular and isotropic rays are followed deterministically
		incoming := r.rayColor(scatter.Scattered, depth-1, rng)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	var pdf core.PDF = scatter.PDF
	if r.scene.HasLights() {
		pdf = core.NewMixturePDF(scatter.PDF, core.NewHittablePDF(hit.Point, r.scene.Lights))
	}

	scattered := core.NewRay(hit.Point, pdf.Generate(rng), ray.Time)
	cosine := math.Max(1e-4, scattered.Direction.Dot(hit.Normal))
	pdfValue := pdf.Value(scattered.Direction, rng)

	// Divisor pdf/cosθ·2π: a vanishing density diverges here and is caught
	// by the per-sample sanitizer
	weight := pdfValue / cosine * math.Pi * 2

	incoming := r.rayColor(scattered, depth-1, rng)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming).Multiply(1 / weight))
}

// sanitize replaces NaN components with 0 and infinities with 1 so that a
// single diverged sample cannot void a pixel
func sanitize(c core.Vec3) core.Vec3 {
	return core.Vec3{
		X: sanitizeComponent(c.X),
		Y: sanitizeComponent(c.Y),
		Z: sanitizeComponent(c.Z),
	}
}

func sanitizeComponent(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	if math.IsInf(x, 0) {
		return 1
	}
	return x
}

// floatToByte gamma-corrects (γ=2) and quantizes one channel
func floatToByte(x float64) byte {
	clamped := math.Min(math.Max(x, 0), 0.999)
	return byte(math.Sqrt(clamped) * 256)
}
