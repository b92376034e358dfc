package engine

import (
	"math/rand"
	"time"
)

// RNG is the injectable randomness source the engine draws from. Production
// code wires a system generator; tests wire a scripted sequence so battles
// replay byte-identically.
type RNG interface {
	// Next returns a value in [0, 1).
	Next() float64
}

type systemRNG struct{ r *rand.Rand }

func (s *systemRNG) Next() float64 { return s.r.Float64() }

// NewSystemRNG returns a time-seeded generator for production battles.
func NewSystemRNG() RNG {
	return &systemRNG{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRNG returns a generator with a fixed seed.
func NewSeededRNG(seed int64) RNG {
	return &systemRNG{r: rand.New(rand.NewSource(seed))}
}

// Script replays a fixed sequence of values, repeating the last one once
// the sequence is exhausted. A single-value script acts as a constant
// source.
type Script struct {
	values []float64
	i      int
}

// NewScript builds a scripted RNG from the given values. At least one
// value must be provided; an empty script behaves as a constant zero.
func NewScript(values ...float64) *Script {
	return &Script{values: values}
}

func (s *Script) Next() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.i]
	if s.i < len(s.values)-1 {
		s.i++
	}
	return v
}
