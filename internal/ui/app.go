package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lumen/internal/a11y"
	"lumen/internal/interact"
	"lumen/internal/page"
	"lumen/internal/reveal"
	"lumen/internal/store"
	"lumen/internal/theme"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrNoDocument is returned when the preview is started without a page.
var ErrNoDocument = errors.New("no document to preview")

const (
	minViewportHeight = 3
	contentPadding    = 2
	parallaxFactor    = 0.2
	parallaxMaxIndent = 16
)

// Focusable element id prefixes. The focus group mixes nav links, the
// theme toggle, and code blocks in document order.
const (
	focusToggle  = "toggle"
	focusNavPfx  = "nav:"
	focusCodePfx = "code:"
)

// Config configures the preview application.
type Config struct {
	Doc          *page.Document
	Store        store.Store
	Detector     theme.SystemScheme
	Clipboard    interact.Clipboard
	OutputFormat string
	Reveal       reveal.Options
}

// App implements the Bubble Tea model for the page preview.
type App struct {
	doc        *page.Document
	controller *theme.Controller
	detector   theme.SystemScheme
	announcer  *a11y.Announcer
	skip       *a11y.SkipLink
	focus      *a11y.FocusGroup

	observer    *reveal.ViewportObserver
	animator    *reveal.Animator
	copyButtons map[string]*interact.CopyButton

	viewport viewport.Model
	keys     KeyMap

	width  int
	height int
	ready  bool

	showHelp     bool
	outputFormat string

	blockTops    map[string]int
	blockHeights map[string]int
	scrollPlan   []int
	copyTicking  bool

	// now is swappable in tests.
	now func() time.Time
}

// NewApp wires the four subsystems over one parsed document. Absent
// collaborators degrade individual features, never the preview itself.
func NewApp(cfg Config) (*App, error) {
	if cfg.Doc == nil {
		return nil, ErrNoDocument
	}
	if cfg.Detector == nil {
		cfg.Detector = theme.StaticScheme(false)
	}

	a := &App{
		doc:          cfg.Doc,
		detector:     cfg.Detector,
		keys:         DefaultKeyMap(),
		outputFormat: cfg.OutputFormat,
		copyButtons:  make(map[string]*interact.CopyButton),
		blockTops:    make(map[string]int),
		blockHeights: make(map[string]int),
		now:          time.Now,
	}

	a.controller = theme.NewController(cfg.Store, cfg.Detector)
	a.announcer = a11y.NewAnnouncer()
	a.announcer.Attach(a.controller)
	a.controller.Load()

	a.skip = a11y.NewSkipLink(cfg.Doc)

	a.focus = a11y.NewFocusGroup(focusOrder(cfg.Doc))

	a.observer = reveal.NewViewportObserver(cfg.Reveal)
	a.animator = reveal.NewAnimator(a.observer, cfg.Doc.AnimationTargets())

	for _, id := range cfg.Doc.CodeBlocks() {
		block := cfg.Doc.BlockByID(id)
		if block == nil {
			continue
		}
		a.copyButtons[id] = interact.NewCopyButton(id, block.Markdown, cfg.Clipboard)
	}

	return a, nil
}

// focusOrder lists the navigable elements: nav links, the theme toggle,
// then code blocks in document order. Membership is fixed here.
func focusOrder(doc *page.Document) []string {
	var ids []string
	for _, link := range doc.Nav {
		ids = append(ids, focusNavPfx+link.Anchor)
	}
	ids = append(ids, focusToggle)
	for _, id := range doc.CodeBlocks() {
		ids = append(ids, focusCodePfx+id)
	}
	return ids
}

// Init schedules the system color-scheme poll.
func (m *App) Init() tea.Cmd {
	return scheduleSystemTick()
}

// Controller exposes the theme controller for startup wiring.
func (m *App) Controller() *theme.Controller {
	return m.controller
}

// chromeHeight is the number of rows outside the viewport: skip link,
// header, optional hero, live region, footer.
func (m *App) chromeHeight() int {
	h := 4
	if m.doc.Hero != "" {
		h++
	}
	return h
}

// layout recomputes the rendered page and block geometry for the current
// size and palette, then re-evaluates visibility.
func (m *App) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	vpHeight := m.height - m.chromeHeight()
	if vpHeight < minViewportHeight {
		vpHeight = minViewportHeight
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
	}

	m.measureBlocks()
	for _, id := range m.doc.AnimationTargets() {
		m.observer.SetGeometry(id, m.blockTops[id], m.blockHeights[id])
	}
	m.refreshContent()
	m.visitViewport()
}

// measureBlocks records each block's first row and height in the rendered
// page. Reveal state only restyles lines, so geometry is stable across
// transitions.
func (m *App) measureBlocks() {
	render := m.renderer()
	top := 0
	for _, b := range m.doc.Blocks {
		content := m.renderBlock(render, b)
		h := lipgloss.Height(content)
		m.blockTops[b.ID] = top
		m.blockHeights[b.ID] = h
		top += h + 1 // blank line between blocks
	}
}

// refreshContent rebuilds the viewport content with current reveal and
// focus state.
func (m *App) refreshContent() {
	if !m.ready {
		return
	}
	render := m.renderer()
	parts := make([]string, 0, len(m.doc.Blocks))
	for _, b := range m.doc.Blocks {
		parts = append(parts, m.renderBlock(render, b))
	}
	m.viewport.SetContent(strings.Join(parts, "\n\n"))
}

// renderer builds the markdown renderer for the active palette and width.
func (m *App) renderer() func(string) string {
	style := m.controller.Palette().GlamourStyle
	if strings.EqualFold(m.outputFormat, "plain") {
		style = "plain"
	}
	width := m.width - contentPadding
	return page.NewRenderer(style, width)
}

// renderBlock renders one block with its affordances: copy label for code
// blocks, faint styling for blocks still pending reveal.
func (m *App) renderBlock(render func(string) string, b page.Block) string {
	pal := m.controller.Palette()
	content := page.RenderBlock(render, b)

	if b.Kind == page.KindCode {
		if btn, ok := m.copyButtons[b.ID]; ok {
			label := "[ " + btn.Label() + " ]"
			if cur, _ := m.focus.Current(); cur == focusCodePfx+b.ID {
				label = interact.FocusStyle(pal.Link).Render(label)
			} else {
				label = pal.Faint.Render(label)
			}
			content = label + "\n" + content
		}
	}

	if !m.animator.Revealed(b.ID) {
		return pal.Faint.Render(content)
	}
	return content
}

// visitViewport feeds the current scroll window to the observer and
// refreshes content when something revealed.
func (m *App) visitViewport() {
	if !m.ready {
		return
	}
	before := m.animator.ObservedCount()
	m.observer.Visit(m.viewport.YOffset, m.viewport.Height)
	if m.animator.ObservedCount() != before {
		m.refreshContent()
	}
}

// scrollTo starts an animated scroll toward the given content row.
func (m *App) scrollTo(row int) tea.Cmd {
	target := m.clampOffset(row)
	m.scrollPlan = reveal.SmoothSteps(m.viewport.YOffset, target)
	if len(m.scrollPlan) == 0 {
		return nil
	}
	return scheduleScrollStep()
}

// jumpTo moves instantly; the skip link bypasses the smooth interceptor.
func (m *App) jumpTo(row int) {
	m.viewport.SetYOffset(m.clampOffset(row))
	m.visitViewport()
}

func (m *App) clampOffset(row int) int {
	if row < 0 {
		return 0
	}
	max := m.viewport.TotalLineCount() - m.viewport.Height
	if max < 0 {
		max = 0
	}
	if row > max {
		return max
	}
	return row
}

// anyCopyPending reports whether any copy button still shows Copied!.
func (m *App) anyCopyPending() bool {
	for _, b := range m.copyButtons {
		if b.Pending() {
			return true
		}
	}
	return false
}

// focusedCopyButton returns the copy button for the focused code block.
func (m *App) focusedCopyButton() *interact.CopyButton {
	cur, ok := m.focus.Current()
	if !ok || !strings.HasPrefix(cur, focusCodePfx) {
		return nil
	}
	return m.copyButtons[strings.TrimPrefix(cur, focusCodePfx)]
}

// heroLine renders the hero with its parallax indent for the current
// scroll position. Inert when the document has no hero.
func (m *App) heroLine() string {
	if m.doc.Hero == "" {
		return ""
	}
	offset := 0
	if m.ready {
		offset = reveal.ParallaxOffset(m.viewport.YOffset, parallaxFactor)
		if offset > parallaxMaxIndent {
			offset = parallaxMaxIndent
		}
	}
	pal := m.controller.Palette()
	return strings.Repeat(" ", offset) + pal.Hero.Render(m.doc.Hero)
}

func (m *App) statusLine() string {
	pal := m.controller.Palette()
	msg := m.announcer.Message()
	if msg == "" {
		return ""
	}
	return pal.LiveRegion.Render(fmt.Sprintf("⟢ %s", msg))
}
