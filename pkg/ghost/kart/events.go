package kart

import "github.com/mpapenbr/ghostreplay/pkg/model"

type zipperEffect interface {
	TriggerZipperEffect()
}

// eventTrigger fires the one-shot effects of the current sample.
// Nitro is handled by the reconstruction.
type eventTrigger struct {
	fx zipperEffect
}

// fire returns true if the zipper effect was triggered
func (t *eventTrigger) fire(ev model.KartReplayEvent) bool {
	if !ev.OnZipper {
		return false
	}
	t.fx.TriggerZipperEffect()
	return true
}
