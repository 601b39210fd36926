package replay

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/mpapenbr/ghostreplay/log"
)

var meter = otel.Meter("ghr.replay")

var ErrInvalidTickRate = errors.New("tick rate must be positive")

// Ghost is the part of a ghost kart the runner drives
type Ghost interface {
	Reset()
	Update(dt float64)
	Ended() bool
}

// Runner plays a ghost from start to end with a fixed time step.
type Runner struct {
	ghost        Ghost
	tickRate     float64
	speed        float64
	tickDuration metric.Float64Histogram
}

type RunnerOption func(r *Runner)

// WithTickRate sets the number of updates per replay second
func WithTickRate(hz float64) RunnerOption {
	return func(r *Runner) {
		r.tickRate = hz
	}
}

// WithSpeed sets the playback speed, 0 runs the replay as fast as possible
func WithSpeed(speed float64) RunnerOption {
	return func(r *Runner) {
		r.speed = speed
	}
}

func NewRunner(ghost Ghost, opts ...RunnerOption) *Runner {
	r := &Runner{ghost: ghost, tickRate: 60, speed: 1}
	for _, opt := range opts {
		opt(r)
	}
	var err error
	r.tickDuration, err = meter.Float64Histogram("ghr.replay.tick",
		metric.WithDescription("duration of a ghost update"),
		metric.WithUnit("s"))
	if err != nil {
		log.Warn("failed to register metric", log.ErrorField(err))
		r.tickDuration = noop.Float64Histogram{}
	}
	return r
}

// Run resets the ghost and updates it until the replay ended or ctx is done.
// It returns the number of updates.
func (r *Runner) Run(ctx context.Context) (int, error) {
	if r.tickRate <= 0 {
		return 0, ErrInvalidTickRate
	}
	dt := 1 / r.tickRate
	var wait time.Duration
	if r.speed > 0 {
		wait = time.Duration(dt / r.speed * float64(time.Second))
	}
	log.Debug("Starting replay",
		log.Float64("dt", dt),
		log.Duration("wait", wait))

	r.ghost.Reset()
	ticks := 0
	for !r.ghost.Ended() {
		if err := ctx.Err(); err != nil {
			return ticks, err
		}
		start := time.Now()
		r.ghost.Update(dt)
		ticks++
		r.tickDuration.Record(ctx, time.Since(start).Seconds())

		if wait > 0 {
			select {
			case <-ctx.Done():
				return ticks, ctx.Err()
			case <-time.After(wait):
			}
		}
	}
	return ticks, nil
}
