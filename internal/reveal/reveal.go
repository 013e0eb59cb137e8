// Package reveal lazily marks content blocks revealed the first time they
// enter the viewport. Observation is one-shot: each target is unregistered
// on its first intersection, so the observed set only shrinks.
package reveal

// Options configure observation.
type Options struct {
	// Threshold is the fraction of a target's height that must be visible
	// to count as intersecting.
	Threshold float64
	// BottomMargin extends the viewport bottom by this many rows so
	// targets reveal slightly before they fully scroll in.
	BottomMargin int
}

// Observer is the viewport-intersection boundary. Register arranges for
// fn to be called with each intersection change for id; Unregister stops
// observation.
type Observer interface {
	Register(id string, fn func(isIntersecting bool))
	Unregister(id string)
}

// Animator owns the pending→revealed transition for every animation
// target present at initialization. Targets added later are not observed.
type Animator struct {
	observer Observer
	revealed map[string]bool
	observed map[string]bool
}

// NewAnimator registers every id with the observer and returns the
// animator. A nil observer yields an inert animator (feature inactive).
func NewAnimator(observer Observer, ids []string) *Animator {
	a := &Animator{
		observer: observer,
		revealed: make(map[string]bool, len(ids)),
		observed: make(map[string]bool, len(ids)),
	}
	if observer == nil {
		return a
	}
	for _, id := range ids {
		id := id
		a.observed[id] = true
		observer.Register(id, func(isIntersecting bool) {
			a.handle(id, isIntersecting)
		})
	}
	return a
}

// handle applies the one-shot transition. Repeated events for an already
// revealed target are no-ops.
func (a *Animator) handle(id string, isIntersecting bool) {
	if !isIntersecting || a.revealed[id] {
		return
	}
	a.revealed[id] = true
	delete(a.observed, id)
	a.observer.Unregister(id)
}

// Revealed reports whether id has made its one-way transition. Ids that
// were never observed read as revealed so unobserved blocks render fully.
func (a *Animator) Revealed(id string) bool {
	if a.revealed[id] {
		return true
	}
	return !a.observed[id]
}

// ObservedCount returns the number of targets still under observation.
func (a *Animator) ObservedCount() int {
	return len(a.observed)
}

// SmoothSteps returns the intermediate scroll offsets for an animated
// scroll from one position to another, easing out toward the target. The
// final element is always the exact target; equal positions yield nil.
func SmoothSteps(from, to int) []int {
	if from == to {
		return nil
	}
	const steps = 12
	delta := float64(to - from)
	out := make([]int, 0, steps)
	prev := from
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		eased := 1 - (1-t)*(1-t)
		pos := from + int(delta*eased)
		if pos != prev || i == steps {
			out = append(out, pos)
			prev = pos
		}
	}
	if out[len(out)-1] != to {
		out = append(out, to)
	}
	return out
}

// ParallaxOffset computes the hero transform for the given scroll
// position. Purely visual; callers skip it when no hero is present.
func ParallaxOffset(scrollTop int, factor float64) int {
	if scrollTop <= 0 || factor <= 0 {
		return 0
	}
	return int(float64(scrollTop) * factor)
}
