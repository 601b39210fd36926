package kart

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/mpapenbr/ghostreplay/log"
	"github.com/mpapenbr/ghostreplay/pkg/ghost/contract"
	"github.com/mpapenbr/ghostreplay/pkg/ghost/controller"
	"github.com/mpapenbr/ghostreplay/pkg/ghost/samples"
	"github.com/mpapenbr/ghostreplay/pkg/model"
)

var (
	ErrIncompatibleController = errors.New("controller is not a ghost controller of this kart")
	ErrMissingCollaborator    = errors.New("missing collaborator")
)

// GhostKart replays a recorded run. The motion is reconstructed from the
// recorded samples, no physics simulation takes place.
type GhostKart struct {
	id        uuid.UUID
	store     *samples.Store
	ctrl      *controller.Ghost
	model     Model
	props     Properties
	visuals   Visuals
	events    *eventTrigger
	metrics   *kartMetrics
	transform model.Transform
	front     mgl64.Vec3
	hidden    bool
}

type Option func(k *GhostKart)

func WithID(id uuid.UUID) Option {
	return func(k *GhostKart) {
		k.id = id
	}
}

// New creates a ghost kart on top of store. handle must be a ghost controller
// reading its timestamps from store.
//
//nolint:whitespace // editor/linter issue
func New(
	store *samples.Store,
	handle controller.Handle,
	deps Deps,
	opts ...Option,
) (*GhostKart, error) {
	if deps.Model == nil || deps.Properties == nil || deps.Visuals == nil {
		return nil, ErrMissingCollaborator
	}
	ctrl, ok := controller.AsGhost(handle)
	if !ok {
		kind := "none"
		if handle != nil {
			kind = handle.Kind().String()
		}
		return nil, fmt.Errorf("got %s: %w", kind, ErrIncompatibleController)
	}
	if tl, ok := ctrl.Timeline().(*samples.Store); !ok || tl != store {
		return nil, fmt.Errorf("timeline not bound to samples: %w", ErrIncompatibleController)
	}
	k := &GhostKart{
		id:        uuid.New(),
		store:     store,
		ctrl:      ctrl,
		model:     deps.Model,
		props:     deps.Properties,
		visuals:   deps.Visuals,
		events:    &eventTrigger{fx: deps.Visuals},
		transform: model.IdentityTransform(),
	}
	for _, opt := range opts {
		opt(k)
	}
	k.metrics = newKartMetrics(k.id)
	return k, nil
}

// NewGhostKart creates a ghost kart together with its sample store and controller.
func NewGhostKart(deps Deps, opts ...Option) (*GhostKart, error) {
	store := samples.NewStore(deps.Model)
	return New(store, controller.NewGhost(store), deps, opts...)
}

// AddReplayEvent appends a recorded sample.
// Must not be called once the playback has started.
func (k *GhostKart) AddReplayEvent(sample model.ReplaySample) error {
	return k.store.Append(sample)
}

// Reset shows the kart again and moves it to the start of the replay.
func (k *GhostKart) Reset() {
	log.Debug("Resetting ghost", log.String("id", k.id.String()))
	k.hidden = false
	k.visuals.SetVisible(true)
	k.ctrl.Reset()
	k.Update(0)
}

// Update advances the replay by dt seconds and updates the kart accordingly.
func (k *GhostKart) Update(dt float64) {
	k.store.Seal()
	k.ctrl.Advance(dt)
	k.metrics.inc(k.metrics.ticks)

	if k.ctrl.IsEnded() {
		k.hide()
		return
	}

	idx := k.ctrl.CurrentIndex()
	contract.Assert(idx >= 0 && idx+1 < k.store.Len(),
		"reconstruction at index %d with %d samples", idx, k.store.Len())
	cur, next := k.sample(idx), k.sample(idx+1)

	nitro := 0.0
	if cur.Event.OnNitro {
		nitro = NitroFraction(cur.Physic.Speed, k.props.EngineMaxSpeed())
	}
	k.visuals.UpdateNitroGraphics(nitro)

	if k.events.fire(cur.Event) {
		k.metrics.inc(k.metrics.zipper)
	}

	pose := Interpolate(cur.Transform, next.Transform,
		k.ctrl.Fraction(), k.store.GraphicalYOffset())
	k.transform = model.Transform{Position: pose.Position, Rotation: pose.Rotation}
	k.visuals.UpdateGraphics(dt, pose)

	k.model.UpdateAnimation(dt, dt*cur.Physic.Speed,
		cur.Physic.Steer, cur.Physic.Speed, idx)

	k.front = k.transform.Apply(mgl64.Vec3{0, 0, k.model.Length() * 0.5})
	k.visuals.UpdateEffects(dt)
}

func (k *GhostKart) hide() {
	k.metrics.inc(k.metrics.hidden)
	if k.hidden {
		return
	}
	log.Debug("Hiding ghost",
		log.String("id", k.id.String()),
		log.Float64("elapsed", k.ctrl.Elapsed()))
	k.hidden = true
	k.visuals.SetVisible(false)
}

func (k *GhostKart) sample(i int) model.ReplaySample {
	s, err := k.store.At(i)
	if err != nil {
		contract.Fail("sample lookup: %v", err)
	}
	return s
}

// Speed returns the recorded speed of the current sample.
func (k *GhostKart) Speed() float64 {
	return k.sample(k.ctrl.CurrentIndex()).Physic.Speed
}

func (k *GhostKart) ID() uuid.UUID {
	return k.id
}

func (k *GhostKart) Ended() bool {
	return k.ctrl.IsEnded()
}

func (k *GhostKart) Controller() *controller.Ghost {
	return k.ctrl
}

func (k *GhostKart) Samples() *samples.Store {
	return k.store
}

func (k *GhostKart) Position() mgl64.Vec3 {
	return k.transform.Position
}

func (k *GhostKart) Rotation() mgl64.Quat {
	return k.transform.Rotation
}

// FrontPosition is the world position of the front of the kart
func (k *GhostKart) FrontPosition() mgl64.Vec3 {
	return k.front
}
