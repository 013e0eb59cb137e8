package page

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// NewRenderer builds a markdown renderer for the given glamour style and
// wrap width. Falls back to plain word wrapping when glamour is
// unavailable or fails on an input.
func NewRenderer(style string, width int) func(string) string {
	if width <= 0 {
		width = 80
	}
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" || style == "rich" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}

// RenderBlock renders one block with the given renderer, reconstructing
// the markdown the block was parsed from.
func RenderBlock(render func(string) string, b Block) string {
	switch b.Kind {
	case KindCode:
		return render("```" + b.Language + "\n" + b.Markdown + "\n```")
	case KindAlert:
		lines := strings.Split(b.Markdown, "\n")
		for i, l := range lines {
			lines[i] = "> " + l
		}
		return render(strings.Join(lines, "\n"))
	default:
		return render(b.Markdown)
	}
}
