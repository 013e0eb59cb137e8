package reveal

// geometry is a target's rendered position: first row and row count.
type geometry struct {
	top    int
	height int
}

// ViewportObserver implements Observer over the scroll position of a
// rendered page. The UI sets target geometry after layout and calls Visit
// on every scroll change.
type ViewportObserver struct {
	opts      Options
	callbacks map[string]func(bool)
	geom      map[string]geometry
}

// NewViewportObserver returns an observer with the given options.
func NewViewportObserver(opts Options) *ViewportObserver {
	if opts.Threshold <= 0 {
		opts.Threshold = 0.1
	}
	if opts.BottomMargin < 0 {
		opts.BottomMargin = 0
	}
	return &ViewportObserver{
		opts:      opts,
		callbacks: make(map[string]func(bool)),
		geom:      make(map[string]geometry),
	}
}

// Register starts observing id.
func (o *ViewportObserver) Register(id string, fn func(isIntersecting bool)) {
	o.callbacks[id] = fn
}

// Unregister stops observing id.
func (o *ViewportObserver) Unregister(id string) {
	delete(o.callbacks, id)
	delete(o.geom, id)
}

// SetGeometry records where a target sits in the rendered page. Geometry
// for unobserved ids is ignored.
func (o *ViewportObserver) SetGeometry(id string, top, height int) {
	if _, ok := o.callbacks[id]; !ok {
		return
	}
	if height < 1 {
		height = 1
	}
	o.geom[id] = geometry{top: top, height: height}
}

// Visit evaluates every observed target against the viewport rows
// [scrollTop, scrollTop+viewHeight) extended by the bottom margin, firing
// callbacks with the intersection result. Callbacks may unregister their
// target during the visit.
func (o *ViewportObserver) Visit(scrollTop, viewHeight int) {
	if viewHeight <= 0 {
		return
	}
	viewBottom := scrollTop + viewHeight + o.opts.BottomMargin

	// Snapshot: callbacks unregister themselves on first intersection.
	ids := make([]string, 0, len(o.callbacks))
	for id := range o.callbacks {
		ids = append(ids, id)
	}

	for _, id := range ids {
		fn, ok := o.callbacks[id]
		if !ok {
			continue
		}
		g, ok := o.geom[id]
		if !ok {
			continue
		}
		visible := overlap(g.top, g.top+g.height, scrollTop, viewBottom)
		needed := int(o.opts.Threshold * float64(g.height))
		if needed < 1 {
			needed = 1
		}
		fn(visible >= needed)
	}
}

// ObservedCount returns the number of registered targets.
func (o *ViewportObserver) ObservedCount() int {
	return len(o.callbacks)
}

func overlap(aTop, aBottom, bTop, bBottom int) int {
	top := aTop
	if bTop > top {
		top = bTop
	}
	bottom := aBottom
	if bBottom < bottom {
		bottom = bBottom
	}
	if bottom <= top {
		return 0
	}
	return bottom - top
}
