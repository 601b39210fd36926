// Package fakes provides collaborators recording every call they receive.
package fakes

import (
	"github.com/mpapenbr/ghostreplay/pkg/ghost/kart"
)

type AnimationCall struct {
	DT           float64
	Displacement float64
	Steer        float64
	Speed        float64
	SampleIndex  int
}

type Model struct {
	Lowest                 float64
	KartLength             float64
	DefaultSuspensionCalls int
	LowestPointCalls       int
	Animations             []AnimationCall
}

func (m *Model) UpdateAnimation(dt, displacement, steer, speed float64, sampleIndex int) {
	m.Animations = append(m.Animations, AnimationCall{
		DT: dt, Displacement: displacement, Steer: steer, Speed: speed, SampleIndex: sampleIndex,
	})
}

func (m *Model) SetDefaultSuspension() {
	m.DefaultSuspensionCalls++
}

func (m *Model) LowestPoint() float64 {
	m.LowestPointCalls++
	return m.Lowest
}

func (m *Model) Length() float64 {
	return m.KartLength
}

type Properties struct {
	MaxSpeed float64
	Calls    int
}

func (p *Properties) EngineMaxSpeed() float64 {
	p.Calls++
	return p.MaxSpeed
}

type Visuals struct {
	Visible       []bool
	Zippers       int
	Nitro         []float64
	Poses         []kart.Pose
	EffectUpdates int
}

func (v *Visuals) SetVisible(visible bool) {
	v.Visible = append(v.Visible, visible)
}

func (v *Visuals) TriggerZipperEffect() {
	v.Zippers++
}

func (v *Visuals) UpdateNitroGraphics(fraction float64) {
	v.Nitro = append(v.Nitro, fraction)
}

func (v *Visuals) UpdateGraphics(_ float64, pose kart.Pose) {
	v.Poses = append(v.Poses, pose)
}

func (v *Visuals) UpdateEffects(float64) {
	v.EffectUpdates++
}

// LastPose returns the most recent pose, ok is false if there is none
func (v *Visuals) LastPose() (kart.Pose, bool) {
	if len(v.Poses) == 0 {
		return kart.Pose{}, false
	}
	return v.Poses[len(v.Poses)-1], true
}

type Set struct {
	Model      *Model
	Properties *Properties
	Visuals    *Visuals
}

// NewSet creates fakes with a lowest point of 0.1, a kart length of 2
// and an engine max speed of 20.
func NewSet() *Set {
	return &Set{
		Model:      &Model{Lowest: 0.1, KartLength: 2},
		Properties: &Properties{MaxSpeed: 20},
		Visuals:    &Visuals{},
	}
}

func (s *Set) Deps() kart.Deps {
	return kart.Deps{Model: s.Model, Properties: s.Properties, Visuals: s.Visuals}
}
