package a11y

import "lumen/internal/theme"

// Announcement texts for the two-state transition machine.
const (
	AnnounceDark  = "Theme changed to dark mode"
	AnnounceLight = "Theme changed to light mode"
)

// Announcer is the polite live region. It subscribes to theme transitions
// and exposes the text assistive technology would read. One announcement
// per distinct transition; repeated identical states say nothing.
type Announcer struct {
	message  string
	count    int
	haveLast bool
	lastDark bool
}

// NewAnnouncer returns an empty live region.
func NewAnnouncer() *Announcer {
	return &Announcer{}
}

// Attach subscribes the announcer to a controller's transitions and
// returns the unsubscribe function.
func (a *Announcer) Attach(c *theme.Controller) func() {
	return c.Subscribe(func(e theme.Event) {
		a.handle(e.Dark)
	})
}

// handle records one transition. The controller already suppresses
// no-op applies; the guard here keeps the region quiet even if a
// duplicate event reaches it through another path.
func (a *Announcer) handle(dark bool) {
	if a.haveLast && a.lastDark == dark {
		return
	}
	a.haveLast = true
	a.lastDark = dark
	if dark {
		a.message = AnnounceDark
	} else {
		a.message = AnnounceLight
	}
	a.count++
}

// Message returns the current live-region text.
func (a *Announcer) Message() string {
	return a.message
}

// Announcements returns how many announcements have been made.
func (a *Announcer) Announcements() int {
	return a.count
}
