// @focus: #entity { kind }
package components

import (
	"math/rand/v2"
	"time"
)

// Kind tags a bubble collection
type Kind int

const (
	KindRegular Kind = iota
	KindPain
	KindBonus

	// KindCount is the number of bubble kinds, used to size per-kind arrays
	KindCount
)

// Kinds lists every kind in processing order
var Kinds = [KindCount]Kind{KindRegular, KindPain, KindBonus}

var kindNames = [KindCount]string{"regular", "pain", "bonus"}

// String returns the lower-case kind name used in config keys and metric names
func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a kind name as produced by String
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// StepFunc returns the upward distance a bubble travels in one motion tick
// Random steps are drawn per bubble per tick, never once at spawn
type StepFunc func(r *rand.Rand) float64

// FixedStep moves every bubble by the same distance each tick
func FixedStep(step float64) StepFunc {
	return func(*rand.Rand) float64 {
		return step
	}
}

// RandomStep draws a fresh step from [0, limit) on every call
func RandomStep(limit float64) StepFunc {
	return func(r *rand.Rand) float64 {
		return r.Float64() * limit
	}
}

// KindSpec parameterizes spawn, motion and scoring for one kind
type KindSpec struct {
	Kind        Kind
	Radius      float64
	SpawnPeriod time.Duration
	Step        StepFunc
	Points      int // Score delta per hit, negative for penalties
}
