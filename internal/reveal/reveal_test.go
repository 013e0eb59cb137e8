package reveal

import "testing"

// recordingObserver captures registrations and counts unregister calls.
type recordingObserver struct {
	callbacks   map[string]func(bool)
	unregisters map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		callbacks:   make(map[string]func(bool)),
		unregisters: make(map[string]int),
	}
}

func (o *recordingObserver) Register(id string, fn func(bool)) {
	o.callbacks[id] = fn
}

func (o *recordingObserver) Unregister(id string) {
	o.unregisters[id]++
}

func (o *recordingObserver) fire(id string, intersecting bool) {
	if fn, ok := o.callbacks[id]; ok {
		fn(intersecting)
	}
}

func TestAnimatorOneShot(t *testing.T) {
	obs := newRecordingObserver()
	a := NewAnimator(obs, []string{"block-1", "block-2"})

	if a.ObservedCount() != 2 {
		t.Fatalf("observed = %d, want 2", a.ObservedCount())
	}

	obs.fire("block-1", true)
	obs.fire("block-1", true)

	t.Run("SingleTransition", func(t *testing.T) {
		if !a.Revealed("block-1") {
			t.Error("block-1 should be revealed")
		}
		if a.Revealed("block-2") {
			t.Error("block-2 should still be pending")
		}
	})

	t.Run("SingleUnregister", func(t *testing.T) {
		if got := obs.unregisters["block-1"]; got != 1 {
			t.Errorf("unregister calls = %d, want exactly 1", got)
		}
	})

	t.Run("ObservedCountDecreases", func(t *testing.T) {
		if a.ObservedCount() != 1 {
			t.Errorf("observed = %d, want 1", a.ObservedCount())
		}
	})
}

func TestAnimatorNonIntersectingIgnored(t *testing.T) {
	obs := newRecordingObserver()
	a := NewAnimator(obs, []string{"block-1"})

	obs.fire("block-1", false)
	if a.Revealed("block-1") {
		t.Error("non-intersecting event must not reveal")
	}
	if len(obs.unregisters) != 0 {
		t.Error("non-intersecting event must not unregister")
	}
	if a.ObservedCount() != 1 {
		t.Errorf("observed = %d, want 1", a.ObservedCount())
	}
}

func TestAnimatorDrainsToZero(t *testing.T) {
	obs := newRecordingObserver()
	ids := []string{"a", "b", "c"}
	a := NewAnimator(obs, ids)

	for _, id := range ids {
		obs.fire(id, true)
	}
	if a.ObservedCount() != 0 {
		t.Errorf("observed = %d, want 0 after all targets reveal", a.ObservedCount())
	}
}

func TestAnimatorNilObserver(t *testing.T) {
	a := NewAnimator(nil, []string{"a"})
	if a.ObservedCount() != 0 {
		t.Error("inert animator observes nothing")
	}
	if !a.Revealed("a") {
		t.Error("unobserved ids read as revealed so content stays legible")
	}
}

func TestAnimatorUnknownIDReadsRevealed(t *testing.T) {
	obs := newRecordingObserver()
	a := NewAnimator(obs, []string{"a"})
	if !a.Revealed("never-registered") {
		t.Error("unknown ids must render fully")
	}
}

func TestViewportObserver(t *testing.T) {
	t.Run("FiresOnThreshold", func(t *testing.T) {
		o := NewViewportObserver(Options{Threshold: 0.5})
		var got []bool
		o.Register("b", func(v bool) { got = append(got, v) })
		o.SetGeometry("b", 10, 4)

		// Rows 0-9 visible: no overlap.
		o.Visit(0, 10)
		// Rows 8-17 visible: full overlap.
		o.Visit(8, 10)

		if len(got) != 2 || got[0] || !got[1] {
			t.Errorf("intersections = %v, want [false true]", got)
		}
	})

	t.Run("BottomMarginTriggersEarly", func(t *testing.T) {
		o := NewViewportObserver(Options{Threshold: 0.5, BottomMargin: 4})
		fired := false
		o.Register("b", func(v bool) { fired = fired || v })
		o.SetGeometry("b", 12, 2)

		// Viewport rows 0-9; margin extends to 13, covering row 12.
		o.Visit(0, 10)
		if !fired {
			t.Error("bottom margin should trigger before full visibility")
		}
	})

	t.Run("UnregisterDuringVisit", func(t *testing.T) {
		o := NewViewportObserver(Options{Threshold: 0.1})
		a := NewAnimator(o, []string{"x", "y"})
		o.SetGeometry("x", 0, 2)
		o.SetGeometry("y", 1, 2)

		o.Visit(0, 10)

		if !a.Revealed("x") || !a.Revealed("y") {
			t.Error("both targets should reveal in one visit")
		}
		if o.ObservedCount() != 0 {
			t.Errorf("observed = %d, want 0", o.ObservedCount())
		}
	})

	t.Run("GeometryForUnknownIgnored", func(t *testing.T) {
		o := NewViewportObserver(Options{})
		o.SetGeometry("ghost", 0, 5)
		o.Visit(0, 10) // must not panic
	})
}

func TestSmoothSteps(t *testing.T) {
	t.Run("EndsExactlyAtTarget", func(t *testing.T) {
		steps := SmoothSteps(0, 40)
		if len(steps) == 0 {
			t.Fatal("expected steps")
		}
		if steps[len(steps)-1] != 40 {
			t.Errorf("final step = %d, want 40", steps[len(steps)-1])
		}
	})

	t.Run("MonotonicDownward", func(t *testing.T) {
		steps := SmoothSteps(40, 5)
		prev := 40
		for _, s := range steps {
			if s > prev {
				t.Fatalf("steps %v not monotonic", steps)
			}
			prev = s
		}
		if steps[len(steps)-1] != 5 {
			t.Errorf("final step = %d, want 5", steps[len(steps)-1])
		}
	})

	t.Run("NoMovement", func(t *testing.T) {
		if steps := SmoothSteps(7, 7); steps != nil {
			t.Errorf("expected nil for equal positions, got %v", steps)
		}
	})
}

func TestParallaxOffset(t *testing.T) {
	if ParallaxOffset(0, 0.3) != 0 {
		t.Error("no scroll, no offset")
	}
	if ParallaxOffset(-5, 0.3) != 0 {
		t.Error("negative scroll clamps to zero")
	}
	if got := ParallaxOffset(10, 0.3); got != 3 {
		t.Errorf("offset = %d, want 3", got)
	}
	if ParallaxOffset(10, 0) != 0 {
		t.Error("zero factor disables the effect")
	}
}
