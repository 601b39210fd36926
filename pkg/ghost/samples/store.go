package samples

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/mpapenbr/ghostreplay/log"
	"github.com/mpapenbr/ghostreplay/pkg/ghost/contract"
	"github.com/mpapenbr/ghostreplay/pkg/model"
)

var (
	ErrOrderingViolation = errors.New("sample timestamps must be strictly increasing")
	ErrIndexOutOfRange   = errors.New("sample index out of range")
)

// SuspensionModel is the part of the kart model needed while recording.
type SuspensionModel interface {
	LowestPoint() float64
	SetDefaultSuspension()
}

// Store is the append-only sequence of replay samples of a single ghost.
// Samples may only be appended until the store is sealed by the start of the
// playback. After that the store is read-only.
type Store struct {
	samples    []model.ReplaySample
	suspension SuspensionModel
	yOffset    float64
	sealed     bool
}

type StoreOption func(s *Store)

func WithCapacity(n int) StoreOption {
	return func(s *Store) {
		s.samples = make([]model.ReplaySample, 0, n)
	}
}

func NewStore(suspension SuspensionModel, opts ...StoreOption) *Store {
	s := &Store{suspension: suspension}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds a sample to the end of the store.
// The store remains unchanged if an error is returned.
func (s *Store) Append(sample model.ReplaySample) error {
	contract.Assert(!s.sealed, "append at t=%v after playback started", sample.Time)

	if math.IsNaN(sample.Time) || math.IsInf(sample.Time, 0) {
		return fmt.Errorf("invalid timestamp %v: %w", sample.Time, ErrOrderingViolation)
	}
	if n := len(s.samples); n > 0 && sample.Time <= s.samples[n-1].Time {
		return fmt.Errorf("timestamp %v not after %v: %w",
			sample.Time, s.samples[n-1].Time, ErrOrderingViolation)
	}
	s.samples = append(s.samples, sample)

	// the first sample defines the resting height of the kart
	if len(s.samples) == 1 {
		avg := lo.Sum(sample.Physic.SuspensionLength[:]) / model.NumWheels
		s.yOffset = -avg + s.suspension.LowestPoint()
		s.suspension.SetDefaultSuspension()
		log.Debug("Computed graphical offset",
			log.Float64("avgSuspension", avg),
			log.Float64("yOffset", s.yOffset))
	}
	return nil
}

func (s *Store) Len() int {
	return len(s.samples)
}

func (s *Store) At(i int) (model.ReplaySample, error) {
	if i < 0 || i >= len(s.samples) {
		return model.ReplaySample{}, fmt.Errorf("index %d, size %d: %w",
			i, len(s.samples), ErrIndexOutOfRange)
	}
	return s.samples[i], nil
}

// Time returns the timestamp of sample i. Callers must stay within [0,Len()).
func (s *Store) Time(i int) float64 {
	return s.samples[i].Time
}

// GraphicalYOffset is the vertical offset computed from the first sample.
// It is zero as long as the store is empty.
func (s *Store) GraphicalYOffset() float64 {
	return s.yOffset
}

// Seal marks the start of the playback. Further appends are contract violations.
func (s *Store) Seal() {
	s.sealed = true
}

func (s *Store) Sealed() bool {
	return s.sealed
}
