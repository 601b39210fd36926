package kart

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"

	"github.com/mpapenbr/ghostreplay/pkg/model"
)

// Pose is the reconstructed state of a ghost for a single tick.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	// CenterShift is the graphical offset of the model, already in world space
	CenterShift mgl64.Vec3
}

// GraphicalPosition is the position the kart model is drawn at
func (p Pose) GraphicalPosition() mgl64.Vec3 {
	return p.Position.Add(p.CenterShift)
}

func LerpPosition(a, b mgl64.Vec3, f float64) mgl64.Vec3 {
	return a.Mul(1 - f).Add(b.Mul(f))
}

// SlerpShortest interpolates between a and b along the shortest arc.
func SlerpShortest(a, b mgl64.Quat, f float64) mgl64.Quat {
	// q and -q describe the same rotation, pick the one closer to a
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, f).Normalize()
}

// Interpolate reconstructs the pose between two recorded transforms.
// yOffset is the vertical graphical offset in kart local space.
func Interpolate(cur, next model.Transform, f, yOffset float64) Pose {
	rot := SlerpShortest(cur.Rotation, next.Rotation, f)
	return Pose{
		Position:    LerpPosition(cur.Position, next.Position, f),
		Rotation:    rot,
		CenterShift: rot.Rotate(mgl64.Vec3{0, yOffset, 0}),
	}
}

// NitroFraction returns |speed|/maxSpeed limited to [0,1].
func NitroFraction(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return 0
	}
	frac := math.Abs(speed) / maxSpeed
	if math.IsNaN(frac) {
		return 0
	}
	return lo.Clamp(frac, 0, 1)
}
