package status

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/bubble-popper/components"
)

// Metric keys
const (
	KeyFireTotal   = "fire.total"
	KeyFireHits    = "fire.hits"
	KeyMotionTicks = "motion.ticks"
	KeyRuns        = "run.count"
	KeyFrameMs     = "frame.ms"
	KeyScorePeak   = "score.peak"
)

// Per-kind key prefixes, joined with Kind.String()
const (
	prefixHit     = "hit."
	prefixSpawn   = "spawn."
	prefixEscaped = "escaped."
)

// HitKey returns the hit counter key for kind
func HitKey(kind components.Kind) string { return prefixHit + kind.String() }

// SpawnKey returns the spawn counter key for kind
func SpawnKey(kind components.Kind) string { return prefixSpawn + kind.String() }

// EscapedKey returns the escaped counter key for kind
func EscapedKey(kind components.Kind) string { return prefixEscaped + kind.String() }

// Registry is the central metrics facade
// The game loop caches pointers at construction; the debug overlay reads them through Range
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// KindCounters caches the per-kind counter pointers
type KindCounters struct {
	Hits    [components.KindCount]*atomic.Int64
	Spawns  [components.KindCount]*atomic.Int64
	Escaped [components.KindCount]*atomic.Int64
}

// KindCounters registers and returns the per-kind counters
func (r *Registry) KindCounters() KindCounters {
	var kc KindCounters
	for _, k := range components.Kinds {
		kc.Hits[k] = r.Ints.Get(HitKey(k))
		kc.Spawns[k] = r.Ints.Get(SpawnKey(k))
		kc.Escaped[k] = r.Ints.Get(EscapedKey(k))
	}
	return kc
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Lines formats every metric as "key: value" in sorted key order, ints first
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.2f", key, v.Get()))
	})
	return lines
}
