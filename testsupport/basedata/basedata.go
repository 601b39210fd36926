package basedata

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mpapenbr/ghostreplay/pkg/model"
)

func Suspension(l float64) [model.NumWheels]float64 {
	return [model.NumWheels]float64{l, l, l, l}
}

// Sample creates a sample at time t located at (x,0,0) without rotation
func Sample(t, x, speed float64) model.ReplaySample {
	return model.ReplaySample{
		Time: t,
		Transform: model.Transform{
			Position: mgl64.Vec3{x, 0, 0},
			Rotation: mgl64.QuatIdent(),
		},
		Physic: model.PhysicInfo{Speed: speed, SuspensionLength: Suspension(0.3)},
	}
}

// Straight creates n samples one second apart, moving 10m per second along x
func Straight(n int) []model.ReplaySample {
	ret := make([]model.ReplaySample, n)
	for i := range ret {
		ret[i] = Sample(float64(i), float64(i)*10, 10)
	}
	return ret
}

// TwoSamples is the basic scenario: standing at the origin at t=0 and
// at (10,0,0) with speed 20 at t=1
func TwoSamples() []model.ReplaySample {
	return []model.ReplaySample{
		Sample(0, 0, 0),
		Sample(1, 10, 20),
	}
}
