package kart

// Model is the animated kart model.
type Model interface {
	// UpdateAnimation animates wheels and suspension. sampleIndex is the index of
	// the current replay sample which is used for suspension lookup.
	UpdateAnimation(dt, displacement, steer, speed float64, sampleIndex int)
	SetDefaultSuspension()
	LowestPoint() float64
	Length() float64
}

type Properties interface {
	EngineMaxSpeed() float64
}

// Visuals receives everything related to the rendering of the kart.
type Visuals interface {
	SetVisible(visible bool)
	TriggerZipperEffect()
	// UpdateNitroGraphics is called every tick, a fraction of 0 turns nitro off.
	UpdateNitroGraphics(fraction float64)
	UpdateGraphics(dt float64, pose Pose)
	UpdateEffects(dt float64)
}

type Deps struct {
	Model      Model
	Properties Properties
	Visuals    Visuals
}
