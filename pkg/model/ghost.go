package model

import (
	"github.com/go-gl/mathgl/mgl64"
)

// number of wheels carrying a suspension
const NumWheels = 4

type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// IdentityTransform is located at the origin without rotation
func IdentityTransform() Transform {
	return Transform{Rotation: mgl64.QuatIdent()}
}

// Apply maps a point given in kart local coordinates into world space
func (t Transform) Apply(local mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(local))
}

type PhysicInfo struct {
	Speed            float64
	Steer            float64
	SuspensionLength [NumWheels]float64
}

type KartReplayEvent struct {
	OnNitro  bool
	OnZipper bool
}

// ReplaySample holds the data recorded for a single frame.
// Time is the number of seconds since the replay started.
type ReplaySample struct {
	Time      float64
	Transform Transform
	Physic    PhysicInfo
	Event     KartReplayEvent
}
