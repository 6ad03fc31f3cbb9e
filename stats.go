package raytrace

import "sync"

// Stats accumulates the counters spec.md §5 and §7 call for: "Statistics
// counters are per-thread; a snapshot merges them at the end." Render
// gives each tile its own Stats and merges them into the caller's
// aggregate once every tile finishes, so the hot path never contends on
// a shared counter.
type Stats struct {
	// Rays is the number of Evaluator.Trace calls made, including
	// recursive reflection/refraction rays. Shadow rays do not go
	// through Trace and are counted only in ShadowRays.
	Rays uint64
	// ShadowRays is the number of occlusion tests cast toward a light
	// sample.
	ShadowRays uint64
	// ReflectionsSkipped counts recursions spec.md §4.10 step 9.2 chose
	// not to take because contribution fell below Config.AdaptiveCutoff.
	ReflectionsSkipped uint64
	// Degenerate counts Object.Intersect calls that returned a
	// degenerate-geometry error and were treated as a miss rather than
	// aborting the render, per spec.md §7's propagation policy.
	Degenerate uint64
	// Supersampled counts pixels that adaptive antialiasing re-traced
	// with more than one sample.
	Supersampled uint64
}

func (s *Stats) addRay(n uint64) {
	if s != nil {
		s.Rays += n
	}
}

func (s *Stats) addShadowRay(n uint64) {
	if s != nil {
		s.ShadowRays += n
	}
}

func (s *Stats) addReflectionSkipped(n uint64) {
	if s != nil {
		s.ReflectionsSkipped += n
	}
}

func (s *Stats) addDegenerate(n uint64) {
	if s != nil {
		s.Degenerate += n
	}
}

func (s *Stats) addSupersampled(n uint64) {
	if s != nil {
		s.Supersampled += n
	}
}

// Merge folds o's counters into s, used to combine the per-tile Stats
// Render hands out into one final snapshot.
func (s *Stats) Merge(o Stats) {
	s.Rays += o.Rays
	s.ShadowRays += o.ShadowRays
	s.ReflectionsSkipped += o.ReflectionsSkipped
	s.Degenerate += o.Degenerate
	s.Supersampled += o.Supersampled
}

// statsAggregate collects the per-tile Stats Render produces. Tiles
// never share a Stats value while rendering, so the mutex here only
// ever guards the brief merge at the end of each tile, not the hot
// per-pixel path.
type statsAggregate struct {
	mu    sync.Mutex
	total Stats
}

func (a *statsAggregate) merge(o Stats) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.total.Merge(o)
}
