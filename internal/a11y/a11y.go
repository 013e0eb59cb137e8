// Package a11y provides keyboard navigation, the skip-to-content control,
// and live-region announcements for theme transitions.
package a11y

import "lumen/internal/page"

// SkipLink is the skip-to-content control rendered as the first element of
// the page.
type SkipLink struct {
	Label    string
	TargetID string
}

// EnsureMainTarget returns the id of the main content landmark. If no
// block carries the well-known id, the first content block (or failing
// that, the first block) is assigned it. Returns "" for an empty document.
func EnsureMainTarget(doc *page.Document) string {
	if doc == nil || len(doc.Blocks) == 0 {
		return ""
	}
	for _, b := range doc.Blocks {
		if b.ID == page.MainContentID {
			return b.ID
		}
	}
	idx := 0
	for i, b := range doc.Blocks {
		if b.Kind == page.KindContent {
			idx = i
			break
		}
	}
	doc.Blocks[idx].ID = page.MainContentID
	return page.MainContentID
}

// NewSkipLink builds the skip control for a document, assigning the main
// landmark if needed. Returns nil when the document has no possible
// target (feature inactive).
func NewSkipLink(doc *page.Document) *SkipLink {
	target := EnsureMainTarget(doc)
	if target == "" {
		return nil
	}
	return &SkipLink{Label: "Skip to content", TargetID: target}
}

// FocusGroup is an ordered set of navigable elements with cyclic adjacency.
// Membership is fixed at construction.
type FocusGroup struct {
	ids   []string
	index int
}

// NewFocusGroup builds a group over the given element ids.
func NewFocusGroup(ids []string) *FocusGroup {
	return &FocusGroup{ids: ids}
}

// Len returns the group size.
func (g *FocusGroup) Len() int {
	return len(g.ids)
}

// Index returns the current focus position.
func (g *FocusGroup) Index() int {
	return g.index
}

// Current returns the focused element id.
func (g *FocusGroup) Current() (string, bool) {
	if len(g.ids) == 0 {
		return "", false
	}
	return g.ids[g.index], true
}

// Next moves focus forward, wrapping past the end.
func (g *FocusGroup) Next() (string, bool) {
	if len(g.ids) == 0 {
		return "", false
	}
	g.index = (g.index + 1) % len(g.ids)
	return g.ids[g.index], true
}

// Prev moves focus backward, wrapping past the start.
func (g *FocusGroup) Prev() (string, bool) {
	if len(g.ids) == 0 {
		return "", false
	}
	g.index = (g.index - 1 + len(g.ids)) % len(g.ids)
	return g.ids[g.index], true
}

// Focus moves directly to position i when it is in range.
func (g *FocusGroup) Focus(i int) {
	if i >= 0 && i < len(g.ids) {
		g.index = i
	}
}
