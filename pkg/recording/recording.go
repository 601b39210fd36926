// Package recording reads and writes ghost recordings.
//
// A recording is a yaml document holding the samples of a single kart.
// Files ending with .gz are gzip compressed.
package recording

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/klauspost/compress/gzip"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/ghostreplay/pkg/model"
)

var ErrInvalidRecording = errors.New("invalid recording")

type Recording struct {
	Kart    string   `yaml:"kart"`
	Samples []Sample `yaml:"samples"`
}

type Sample struct {
	Time     float64   `yaml:"time"`
	Position []float64 `yaml:"position,flow"`
	// x, y, z, w
	Rotation   []float64 `yaml:"rotation,flow"`
	Speed      float64   `yaml:"speed"`
	Steer      float64   `yaml:"steer"`
	Suspension []float64 `yaml:"suspension,flow"`
	Nitro      bool      `yaml:"nitro,omitempty"`
	Zipper     bool      `yaml:"zipper,omitempty"`
}

// Appender receives the samples of a recording, usually a ghost kart
type Appender interface {
	AddReplayEvent(sample model.ReplaySample) error
}

func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return &rec, nil
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &rec, nil
}

func Encode(w io.Writer, rec *Recording) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return err
	}
	return enc.Close()
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// Open reads the recording stored at path
func Open(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if isCompressed(path) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return Decode(r)
}

// Save writes rec to path, replacing an existing file
func Save(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if !isCompressed(path) {
		return Encode(f, rec)
	}
	zw := gzip.NewWriter(f)
	if err := Encode(zw, rec); err != nil {
		return err
	}
	return zw.Close()
}

// ToSamples converts the recording into replay samples
func (rec *Recording) ToSamples() ([]model.ReplaySample, error) {
	ret := make([]model.ReplaySample, 0, len(rec.Samples))
	for i := range rec.Samples {
		s, err := rec.Samples[i].toModel()
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		ret = append(ret, s)
	}
	return ret, nil
}

func (s *Sample) toModel() (model.ReplaySample, error) {
	if len(s.Position) != 3 {
		return model.ReplaySample{}, fmt.Errorf("position needs 3 values, got %d: %w",
			len(s.Position), ErrInvalidRecording)
	}
	if len(s.Rotation) != 4 {
		return model.ReplaySample{}, fmt.Errorf("rotation needs 4 values, got %d: %w",
			len(s.Rotation), ErrInvalidRecording)
	}
	if len(s.Suspension) != model.NumWheels {
		return model.ReplaySample{}, fmt.Errorf("suspension needs %d values, got %d: %w",
			model.NumWheels, len(s.Suspension), ErrInvalidRecording)
	}
	rot := mgl64.Quat{
		W: s.Rotation[3],
		V: mgl64.Vec3{s.Rotation[0], s.Rotation[1], s.Rotation[2]},
	}
	if rot.Len() < 1e-9 {
		return model.ReplaySample{}, fmt.Errorf("zero rotation: %w", ErrInvalidRecording)
	}
	ret := model.ReplaySample{
		Time: s.Time,
		Transform: model.Transform{
			Position: mgl64.Vec3{s.Position[0], s.Position[1], s.Position[2]},
			Rotation: rot.Normalize(),
		},
		Physic: model.PhysicInfo{Speed: s.Speed, Steer: s.Steer},
		Event:  model.KartReplayEvent{OnNitro: s.Nitro, OnZipper: s.Zipper},
	}
	copy(ret.Physic.SuspensionLength[:], s.Suspension)
	return ret, nil
}

// FromSamples creates a recording for the given samples
func FromSamples(kart string, samples []model.ReplaySample) *Recording {
	return &Recording{
		Kart: kart,
		Samples: lo.Map(samples, func(s model.ReplaySample, _ int) Sample {
			p, q := s.Transform.Position, s.Transform.Rotation
			return Sample{
				Time:       s.Time,
				Position:   []float64{p.X(), p.Y(), p.Z()},
				Rotation:   []float64{q.V.X(), q.V.Y(), q.V.Z(), q.W},
				Speed:      s.Physic.Speed,
				Steer:      s.Physic.Steer,
				Suspension: append([]float64(nil), s.Physic.SuspensionLength[:]...),
				Nitro:      s.Event.OnNitro,
				Zipper:     s.Event.OnZipper,
			}
		}),
	}
}

// Feed converts the recording and appends all samples to dst.
// It returns the number of appended samples.
func Feed(dst Appender, rec *Recording) (int, error) {
	data, err := rec.ToSamples()
	if err != nil {
		return 0, err
	}
	for i := range data {
		if err := dst.AddReplayEvent(data[i]); err != nil {
			return i, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return len(data), nil
}
