//nolint:funlen // ok for tests
package kart

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/ghostreplay/pkg/model"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// rotation angle needed to get from a to b
func angle(a, b mgl64.Quat) float64 {
	d := math.Min(1, math.Abs(a.Normalize().Dot(b.Normalize())))
	return 2 * math.Acos(d)
}

func sameRotation(a, b mgl64.Quat) bool {
	return angle(a, b) < 1e-6
}

func TestLerpPosition(t *testing.T) {
	a := mgl64.Vec3{1, 2, 3}
	b := mgl64.Vec3{-4, 8, 0.5}
	assert.Equal(t, a, LerpPosition(a, b, 0))
	assert.Equal(t, b, LerpPosition(a, b, 1))
	if diff := cmp.Diff(mgl64.Vec3{-1.5, 5, 1.75}, LerpPosition(a, b, 0.5), approx); diff != "" {
		t.Errorf("LerpPosition mismatch (-want +got):\n%s", diff)
	}
}

func quatPairs() map[string][2]mgl64.Quat {
	q := mgl64.QuatRotate(0.7, mgl64.Vec3{1, 2, 3}.Normalize())
	return map[string][2]mgl64.Quat{
		"identity":        {mgl64.QuatIdent(), mgl64.QuatIdent()},
		"quarter turn":    {mgl64.QuatIdent(), mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})},
		"almost half":     {mgl64.QuatIdent(), mgl64.QuatRotate(math.Pi*0.99, mgl64.Vec3{0, 0, 1})},
		"negated":         {q, q.Scale(-1)},
		"opposite sign":   {q, mgl64.QuatRotate(1.1, mgl64.Vec3{0, 1, 0}).Scale(-1)},
		"long way around": {mgl64.QuatIdent(), mgl64.QuatRotate(math.Pi*1.5, mgl64.Vec3{1, 0, 0})},
		"close":           {q, q.Mul(mgl64.QuatRotate(1e-4, mgl64.Vec3{0, 1, 0}))},
	}
}

func TestSlerpShortest(t *testing.T) {
	for name, pair := range quatPairs() {
		t.Run(name, func(t *testing.T) {
			a, b := pair[0], pair[1]
			total := angle(a, b)
			assert.True(t, sameRotation(a, SlerpShortest(a, b, 0)), "f=0 must be a")
			assert.True(t, sameRotation(b, SlerpShortest(a, b, 1)), "f=1 must be b")
			for i := 0; i <= 20; i++ {
				f := float64(i) / 20
				r := SlerpShortest(a, b, f)
				assert.InDelta(t, 1.0, r.Len(), 1e-9, "f=%v", f)
				assert.LessOrEqual(t, angle(a, r), math.Pi+1e-9, "f=%v", f)
				assert.LessOrEqual(t, angle(a, r), total+1e-6, "f=%v", f)
				assert.InDelta(t, f*total, angle(a, r), 1e-3, "f=%v", f)
			}
		})
	}
}

func TestSlerpShortest_Halfway(t *testing.T) {
	b := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	got := SlerpShortest(mgl64.QuatIdent(), b, 0.5)
	want := mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0})
	assert.True(t, got.ApproxEqualThreshold(want, 1e-9), "got %v", got)
}

func TestInterpolate_CenterShift(t *testing.T) {
	tests := []struct {
		name string
		rot  mgl64.Quat
		want mgl64.Vec3
	}{
		{"upright", mgl64.QuatIdent(), mgl64.Vec3{0, -0.2, 0}},
		{"rolled 90 degrees", mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}), mgl64.Vec3{0.2, 0, 0}},
		{"upside down", mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0}), mgl64.Vec3{0, 0.2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := model.Transform{Position: mgl64.Vec3{1, 1, 1}, Rotation: tt.rot}
			pose := Interpolate(tr, tr, 0.3, -0.2)
			if diff := cmp.Diff(tt.want, pose.CenterShift, approx); diff != "" {
				t.Errorf("CenterShift mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(mgl64.Vec3{1, 1, 1}.Add(tt.want),
				pose.GraphicalPosition(), approx); diff != "" {
				t.Errorf("GraphicalPosition mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNitroFraction(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		maxSpeed float64
		want     float64
	}{
		{"half", 10, 20, 0.5},
		{"reverse", -10, 20, 0.5},
		{"above max", 50, 20, 1},
		{"standing", 0, 20, 0},
		{"no max speed", 10, 0, 0},
		{"nan speed", math.NaN(), 20, 0},
		{"infinite speed", math.Inf(1), 20, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NitroFraction(tt.speed, tt.maxSpeed)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

type zipperCounter struct{ n int }

func (z *zipperCounter) TriggerZipperEffect() { z.n++ }

func TestEventTrigger(t *testing.T) {
	z := &zipperCounter{}
	et := &eventTrigger{fx: z}
	assert.False(t, et.fire(model.KartReplayEvent{}))
	assert.False(t, et.fire(model.KartReplayEvent{OnNitro: true}))
	assert.True(t, et.fire(model.KartReplayEvent{OnZipper: true}))
	assert.True(t, et.fire(model.KartReplayEvent{OnZipper: true, OnNitro: true}))
	assert.Equal(t, 2, z.n)
}
