// Package headless implements the kart collaborators without any rendering.
// Everything the ghost would display is reported to the log and summarized
// in Stats.
package headless

import (
	"github.com/mpapenbr/ghostreplay/log"
	"github.com/mpapenbr/ghostreplay/pkg/ghost/kart"
)

type Stats struct {
	Frames        int
	Zippers       int
	NitroFrames   int
	MaxNitro      float64
	Distance      float64
	VisibleChange int
}

type Model struct {
	lowestPoint float64
	length      float64
	stats       *Stats
}

// NewModel creates a kart model with fixed dimensions
func NewModel(lowestPoint, length float64, stats *Stats) *Model {
	return &Model{lowestPoint: lowestPoint, length: length, stats: stats}
}

//nolint:whitespace // editor/linter issue
func (m *Model) UpdateAnimation(
	dt, displacement, steer, speed float64, sampleIndex int,
) {
	m.stats.Distance += displacement
	log.Debug("Animation",
		log.Int("sample", sampleIndex),
		log.Float64("dt", dt),
		log.Float64("steer", steer),
		log.Float64("speed", speed))
}

func (m *Model) SetDefaultSuspension() {
	log.Debug("Default suspension set")
}

func (m *Model) LowestPoint() float64 { return m.lowestPoint }
func (m *Model) Length() float64      { return m.length }

type Properties struct {
	maxSpeed float64
}

func NewProperties(engineMaxSpeed float64) *Properties {
	return &Properties{maxSpeed: engineMaxSpeed}
}

func (p *Properties) EngineMaxSpeed() float64 { return p.maxSpeed }

type Visuals struct {
	stats   *Stats
	visible bool
}

func NewVisuals(stats *Stats) *Visuals {
	return &Visuals{stats: stats, visible: true}
}

func (v *Visuals) SetVisible(visible bool) {
	if v.visible != visible {
		v.stats.VisibleChange++
	}
	v.visible = visible
	log.Info("Ghost visibility", log.Bool("visible", visible))
}

func (v *Visuals) TriggerZipperEffect() {
	v.stats.Zippers++
	log.Info("Zipper")
}

func (v *Visuals) UpdateNitroGraphics(fraction float64) {
	if fraction > 0 {
		v.stats.NitroFrames++
		v.stats.MaxNitro = max(v.stats.MaxNitro, fraction)
	}
}

func (v *Visuals) UpdateGraphics(dt float64, pose kart.Pose) {
	v.stats.Frames++
	p := pose.GraphicalPosition()
	log.Debug("Pose",
		log.Float64("dt", dt),
		log.Float64("x", p.X()),
		log.Float64("y", p.Y()),
		log.Float64("z", p.Z()),
		log.Float64("qw", pose.Rotation.W))
}

func (v *Visuals) UpdateEffects(float64) {}

func (v *Visuals) Visible() bool {
	return v.visible
}

// NewDeps wires the headless collaborators sharing stats
//
//nolint:whitespace // editor/linter issue
func NewDeps(
	lowestPoint, length, engineMaxSpeed float64, stats *Stats,
) kart.Deps {
	return kart.Deps{
		Model:      NewModel(lowestPoint, length, stats),
		Properties: NewProperties(engineMaxSpeed),
		Visuals:    NewVisuals(stats),
	}
}
