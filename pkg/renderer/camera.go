package renderer

import (
	"math"
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// CameraConfig holds the parameters for camera construction
type CameraConfig struct {
	LookFrom      core.Vec3
	LookAt        core.Vec3
	VUp           core.Vec3
	VFov          float64 // vertical field of view in degrees
	AspectRatio   float64
	Aperture      float64
	FocusDistance float64
	Time0         float64 // shutter open
	Time1         float64 // shutter close
}

// Camera generates primary rays through a thin lens. Rays carry a uniform
// time within the shutter interval for motion blur.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a thin-lens camera from the config
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(config.FocusDistance * viewportWidth)
	vertical := v.Multiply(config.FocusDistance * viewportHeight)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// GetRay generates a ray through viewport coordinates (s, t) in [0,1]².
// The origin is jittered over the lens disk for depth of field.
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(rng).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	origin := c.origin.Add(offset)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction, core.RandomRange(c.time0, c.time1, rng))
}

// SelectCamera returns the camera matching a catalogue scene. Unknown scene
// names share the two-spheres viewpoint, mirroring the scene fallback.
func SelectCamera(aspectRatio float64, sceneName string) *Camera {
	config := CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   aspectRatio,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}

	switch sceneName {
	case "random":
		config.Aperture = 0.1
	case "simplelight":
		config.LookFrom = core.NewVec3(26, 3, 6)
		config.LookAt = core.NewVec3(0, 2, 0)
	case "cornell", "smoke":
		config.LookFrom = core.NewVec3(278, 278, -800)
		config.LookAt = core.NewVec3(278, 278, 0)
		config.VFov = 40
	case "final":
		config.LookFrom = core.NewVec3(478, 278, -600)
		config.LookAt = core.NewVec3(278, 278, 0)
		config.VFov = 40
	}

	return NewCamera(config)
}
