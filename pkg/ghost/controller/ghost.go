package controller

import (
	"math"

	"github.com/samber/lo"

	"github.com/mpapenbr/ghostreplay/log"
	"github.com/mpapenbr/ghostreplay/pkg/ghost/contract"
)

// Timeline provides the timestamps of the recorded samples.
type Timeline interface {
	Len() int
	Time(i int) float64
}

// PlaybackState is the position of the cursor within the replay.
// While not Ended, Index+1 is a valid sample index.
type PlaybackState struct {
	Index    int
	Fraction float64
	Elapsed  float64
	Ended    bool
}

// largest fraction below 1
var maxFraction = math.Nextafter(1, 0)

// Ghost is the playback controller. It maps the elapsed replay time to
// a sample index and the interpolation fraction towards the next sample.
type Ghost struct {
	timeline Timeline
	state    PlaybackState
}

func NewGhost(timeline Timeline) *Ghost {
	return &Ghost{timeline: timeline}
}

func (g *Ghost) Kind() Kind { return KindGhost }
func (g *Ghost) isHandle()  {}

// Advance moves the cursor dt seconds forward.
// Once the replay ended this is a no-op.
func (g *Ghost) Advance(dt float64) {
	if g.state.Ended {
		return
	}
	contract.Assert(dt >= 0, "invalid time step %v", dt)

	g.state.Elapsed += dt
	n := g.timeline.Len()
	idx := g.state.Index
	for idx+1 < n && g.timeline.Time(idx+1) <= g.state.Elapsed {
		idx++
	}
	g.state.Index = idx

	if idx >= n-1 {
		g.state.Ended = true
		g.state.Fraction = 0
		log.Debug("Replay ended",
			log.Int("samples", n),
			log.Float64("elapsed", g.state.Elapsed))
		return
	}
	t0, t1 := g.timeline.Time(idx), g.timeline.Time(idx+1)
	g.state.Fraction = lo.Clamp((g.state.Elapsed-t0)/(t1-t0), 0, maxFraction)
}

// Reset moves the cursor back to the start of the replay.
func (g *Ghost) Reset() {
	g.state = PlaybackState{}
}

func (g *Ghost) Timeline() Timeline {
	return g.timeline
}

func (g *Ghost) CurrentIndex() int {
	return g.state.Index
}

func (g *Ghost) Fraction() float64 {
	return g.state.Fraction
}

func (g *Ghost) Elapsed() float64 {
	return g.state.Elapsed
}

func (g *Ghost) IsEnded() bool {
	return g.state.Ended
}

func (g *Ghost) State() PlaybackState {
	return g.state
}
