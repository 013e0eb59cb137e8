package theme

import (
	"lumen/internal/debug"
	"lumen/internal/store"
)

// Controller is the single writer of the rendered appearance. All other
// components read it or subscribe to its events; none mutate it.
type Controller struct {
	store    store.Store
	detector SystemScheme
	events   *bus

	pref    Preference
	dark    bool
	applied bool
	palette Palette
}

// NewController builds a controller over the given store and system signal.
// Call Load to read the persisted preference and render the initial state.
func NewController(st store.Store, detector SystemScheme) *Controller {
	return &Controller{
		store:    st,
		detector: detector,
		events:   newBus(),
		pref:     Auto,
		palette:  LightPalette(),
	}
}

// Subscribe registers a listener for appearance transitions and returns an
// unsubscribe function. Listeners run synchronously inside Apply.
func (c *Controller) Subscribe(fn func(Event)) func() {
	return c.events.subscribe(fn)
}

// Load reads the persisted preference and applies the resolved appearance.
// An absent, invalid, or unreadable value degrades to Auto for the session.
func (c *Controller) Load() {
	pref := Auto
	if c.store != nil {
		if raw, ok := c.store.Get(StorageKey); ok {
			pref = ParsePreference(raw)
		}
	}
	c.pref = pref
	c.Apply(Resolve(pref, c.systemDark()))
}

// Apply renders the given appearance. Idempotent: re-applying the current
// appearance does no work and publishes no event.
func (c *Controller) Apply(dark bool) {
	if c.applied && c.dark == dark {
		return
	}
	c.dark = dark
	c.applied = true
	if dark {
		c.palette = DarkPalette()
	} else {
		c.palette = LightPalette()
	}
	c.events.publish(Event{Dark: dark})
}

// SetPreference persists the preference and applies the resolved
// appearance. Store write failures are logged and swallowed; the rendered
// state still changes for this session.
func (c *Controller) SetPreference(pref Preference) {
	if !pref.Valid() {
		pref = Auto
	}
	c.pref = pref
	if c.store != nil {
		if err := c.store.Set(StorageKey, string(pref)); err != nil {
			debug.Logf("theme: persist preference %q: %v", pref, err)
		}
	}
	c.Apply(Resolve(pref, c.systemDark()))
}

// Toggle flips the currently rendered appearance to the opposite concrete
// preference. The first toggle from Auto always commits to a concrete
// value; Auto is never re-entered from this path.
func (c *Controller) Toggle() {
	if c.dark {
		c.SetPreference(Light)
	} else {
		c.SetPreference(Dark)
	}
}

// SystemChanged handles a system color-scheme change. Only an Auto
// preference follows the system; explicit preferences are never overridden.
func (c *Controller) SystemChanged(systemDark bool) {
	if c.pref != Auto {
		return
	}
	c.Apply(Resolve(Auto, systemDark))
}

// Dark reports the rendered appearance.
func (c *Controller) Dark() bool {
	return c.dark
}

// Preference returns the current stored preference.
func (c *Controller) Preference() Preference {
	return c.pref
}

// Palette returns the active style set.
func (c *Controller) Palette() Palette {
	return c.palette
}

// ToggleIcon returns the icon for the toggle control, matching the
// rendered appearance.
func (c *Controller) ToggleIcon() string {
	return c.palette.ToggleIcon
}

func (c *Controller) systemDark() bool {
	if c.detector == nil {
		return false
	}
	return c.detector.PrefersDark()
}
