package recording

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mpapenbr/ghostreplay/pkg/model"
)

type CircleConfig struct {
	Radius   float64 // meters
	LapTime  float64 // seconds
	Rate     float64 // samples per second
	Laps     int
	MaxSteer float64
}

func DefaultCircleConfig() CircleConfig {
	return CircleConfig{Radius: 50, LapTime: 30, Rate: 10, Laps: 1, MaxSteer: 0.3}
}

// Circle creates samples of a kart driving counter clockwise around the
// origin. Nitro is used during the second quarter of each lap, a zipper is
// hit at the middle of each lap.
func Circle(cfg CircleConfig) []model.ReplaySample {
	n := int(math.Round(cfg.LapTime*cfg.Rate)) * cfg.Laps
	speed := 2 * math.Pi * cfg.Radius / cfg.LapTime
	perLap := int(math.Round(cfg.LapTime * cfg.Rate))
	ret := make([]model.ReplaySample, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / cfg.Rate
		theta := 2 * math.Pi * t / cfg.LapTime
		lapPos := 0.0
		if perLap > 0 {
			lapPos = float64(i%perLap) / float64(perLap)
		}
		// heading is the tangent of the circle, rotated around the up axis
		rot := mgl64.QuatRotate(-theta, mgl64.Vec3{0, 1, 0})
		ret = append(ret, model.ReplaySample{
			Time: t,
			Transform: model.Transform{
				Position: mgl64.Vec3{cfg.Radius * math.Sin(theta), 0, -cfg.Radius * math.Cos(theta)},
				Rotation: rot,
			},
			Physic: model.PhysicInfo{
				Speed: speed,
				Steer: cfg.MaxSteer,
				SuspensionLength: [model.NumWheels]float64{
					0.30, 0.30, 0.28 + 0.02*math.Cos(theta), 0.28 + 0.02*math.Cos(theta),
				},
			},
			Event: model.KartReplayEvent{
				OnNitro:  lapPos >= 0.25 && lapPos < 0.5,
				OnZipper: perLap > 0 && i%perLap == perLap/2,
			},
		})
	}
	return ret
}
