package ui

import (
	"strings"
	"testing"
	"time"

	"lumen/internal/a11y"
	"lumen/internal/interact"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewComposition(t *testing.T) {
	app, _, _ := newTestApp(t)
	out := app.View()

	for _, want := range []string{
		"Skip to content",
		"Lumen Docs",
		"Getting Started",
		"Usage",
		"Build pages fast",
		"q quit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewAnnouncesInitialTheme(t *testing.T) {
	app, _, _ := newTestApp(t)

	if !strings.Contains(app.View(), a11y.AnnounceDark) {
		t.Fatal("view should carry the initial theme announcement")
	}

	pressRune(app, 't')
	if !strings.Contains(app.View(), a11y.AnnounceLight) {
		t.Fatal("view should carry the toggle announcement")
	}
}

func TestViewToggleIconFollowsTheme(t *testing.T) {
	app, _, _ := newTestApp(t)

	dark := app.controller.ToggleIcon()
	if !strings.Contains(app.View(), dark) {
		t.Fatalf("view missing toggle icon %q", dark)
	}

	pressRune(app, 't')
	light := app.controller.ToggleIcon()
	if light == dark {
		t.Fatal("toggle icon should change with the theme")
	}
	if !strings.Contains(app.View(), light) {
		t.Fatalf("view missing toggle icon %q after toggle", light)
	}
}

func TestViewCopyToast(t *testing.T) {
	app, _, _ := newTestApp(t)

	base := time.Now()
	app.now = func() time.Time { return base }

	if strings.Contains(app.View(), interact.LabelCopied) {
		t.Fatal("no toast before any copy")
	}

	pressRune(app, 'c')
	if !strings.Contains(app.View(), interact.LabelCopied) {
		t.Fatal("view should show the copied toast while the revert window is open")
	}

	app.now = func() time.Time { return base.Add(interact.RevertWindow + time.Millisecond) }
	app.Update(copyTickMsg{})
	if strings.Contains(app.View(), interact.LabelCopied) {
		t.Fatal("toast should clear after the revert window")
	}
}

func TestViewHelpOverlay(t *testing.T) {
	app, _, _ := newTestApp(t)

	pressRune(app, '?')
	out := app.View()
	if !strings.Contains(out, "Keyboard") {
		t.Fatal("help overlay missing")
	}
	if strings.Contains(out, "Build pages fast") {
		t.Fatal("help overlay should replace the page")
	}
}

func TestViewBeforeFirstSize(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.ready = false
	if out := app.View(); !strings.Contains(out, "Loading") {
		t.Fatalf("unexpected pre-layout view %q", out)
	}
}

func TestHeroParallaxIndent(t *testing.T) {
	app, _, _ := newTestApp(t)

	flat := app.heroLine()
	app.Update(tea.KeyMsg{Type: tea.KeyEnd})
	shifted := app.heroLine()

	if lead(flat) >= lead(shifted) {
		t.Fatalf("hero indent should grow with scroll: %d vs %d", lead(flat), lead(shifted))
	}
}

func lead(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}
