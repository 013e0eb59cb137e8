package theme

// Event describes one rendered-appearance transition. Exactly one event is
// published per distinct transition, regardless of which code path changed
// the appearance (toggle, explicit preference, system change).
type Event struct {
	Dark bool
}

// bus is a minimal synchronous publish/subscribe list. Subscribers run in
// registration order within the same turn as the Apply call, which keeps
// the rendered state and its announcements consistent with no intermediate
// paint.
type bus struct {
	nextID int
	subs   map[int]func(Event)
}

func newBus() *bus {
	return &bus{subs: make(map[int]func(Event))}
}

func (b *bus) subscribe(fn func(Event)) func() {
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() { delete(b.subs, id) }
}

func (b *bus) publish(e Event) {
	for id := 0; id < b.nextID; id++ {
		if fn, ok := b.subs[id]; ok {
			fn(e)
		}
	}
}
