//nolint:funlen // ok for tests
package controller

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/ghostreplay/pkg/ghost/contract"
)

type times []float64

func (t times) Len() int           { return len(t) }
func (t times) Time(i int) float64 { return t[i] }

func TestGhost_Advance(t *testing.T) {
	tests := []struct {
		name     string
		timeline times
		steps    []float64
		want     PlaybackState
	}{
		{
			name:     "halfway between two samples",
			timeline: times{0, 1},
			steps:    []float64{0.5},
			want:     PlaybackState{Index: 0, Fraction: 0.5, Elapsed: 0.5},
		},
		{
			name:     "exactly on a sample",
			timeline: times{0, 1, 2},
			steps:    []float64{0.5, 0.5},
			want:     PlaybackState{Index: 1, Fraction: 0, Elapsed: 1},
		},
		{
			name:     "skip several samples",
			timeline: times{0, 1, 2, 3, 4},
			steps:    []float64{2.75},
			want:     PlaybackState{Index: 2, Fraction: 0.75, Elapsed: 2.75},
		},
		{
			name:     "before first sample",
			timeline: times{1, 2},
			steps:    []float64{0.5},
			want:     PlaybackState{Index: 0, Fraction: 0, Elapsed: 0.5},
		},
		{
			name:     "reaching the last sample ends",
			timeline: times{0, 1},
			steps:    []float64{1},
			want:     PlaybackState{Index: 1, Elapsed: 1, Ended: true},
		},
		{
			name:     "single sample",
			timeline: times{0},
			steps:    []float64{0.001},
			want:     PlaybackState{Index: 0, Elapsed: 0.001, Ended: true},
		},
		{
			name:     "empty",
			timeline: times{},
			steps:    []float64{0},
			want:     PlaybackState{Ended: true},
		},
		{
			name:     "no-op after end",
			timeline: times{0, 1},
			steps:    []float64{2, 3},
			want:     PlaybackState{Index: 1, Elapsed: 2, Ended: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGhost(tt.timeline)
			for _, dt := range tt.steps {
				g.Advance(dt)
			}
			if diff := cmp.Diff(tt.want, g.State()); diff != "" {
				t.Errorf("State() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGhost_AdvanceMonotonic(t *testing.T) {
	tl := make(times, 50)
	for i := range tl {
		tl[i] = float64(i) * 0.1
	}
	g := NewGhost(tl)
	rnd := rand.New(rand.NewSource(42))
	last := g.State()
	endedSeen := false
	for i := 0; i < 500; i++ {
		g.Advance(rnd.Float64() * 0.05)
		cur := g.State()
		assert.GreaterOrEqual(t, cur.Elapsed, last.Elapsed)
		assert.GreaterOrEqual(t, cur.Index, last.Index)
		if endedSeen {
			assert.True(t, cur.Ended, "ended must be terminal")
		}
		if cur.Ended {
			endedSeen = true
		} else {
			assert.Less(t, cur.Index, tl.Len()-1)
			assert.GreaterOrEqual(t, cur.Fraction, 0.0)
			assert.Less(t, cur.Fraction, 1.0)
		}
		last = cur
	}
	assert.True(t, endedSeen)
}

func TestGhost_Reset(t *testing.T) {
	g := NewGhost(times{0, 1})
	g.Advance(5)
	assert.True(t, g.IsEnded())
	g.Reset()
	assert.Equal(t, PlaybackState{}, g.State())
	g.Advance(0.25)
	assert.Equal(t, 0, g.CurrentIndex())
	assert.InDelta(t, 0.25, g.Fraction(), 1e-12)
	assert.InDelta(t, 0.25, g.Elapsed(), 1e-12)
}

func TestGhost_NegativeStep(t *testing.T) {
	g := NewGhost(times{0, 1})
	assert.PanicsWithValue(t, contract.Violation{Msg: "invalid time step -0.1"},
		func() { g.Advance(-0.1) })
}

func TestAsGhost(t *testing.T) {
	g := NewGhost(times{})
	tests := []struct {
		name   string
		handle Handle
		want   bool
	}{
		{"ghost", g, true},
		{"ai", NewBasic(KindAI), false},
		{"basic claiming ghost", NewBasic(KindGhost), false},
		{"nil", nil, false},
		{"typed nil", (*Ghost)(nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsGhost(tt.handle)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Same(t, g, got)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Ghost", KindGhost.String())
	assert.Equal(t, "LocalPlayer", KindLocalPlayer.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
