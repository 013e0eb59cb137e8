// Package page models a generated site page: YAML front matter plus an
// ordered list of content blocks parsed from the markdown body.
package page

import (
	"bufio"
	"fmt"
	"strings"

	lerrors "lumen/internal/errors"

	"gopkg.in/yaml.v3"
)

// MainContentID is the well-known id of the main content landmark targeted
// by the skip link.
const MainContentID = "main-content"

// Kind classifies a block. Content blocks, cards, and alerts are animation
// targets; code blocks get the copy affordance.
type Kind int

const (
	KindContent Kind = iota
	KindHeading
	KindCode
	KindAlert
	KindCard
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindCode:
		return "code"
	case KindAlert:
		return "alert"
	case KindCard:
		return "card"
	default:
		return "content"
	}
}

// NavLink is one entry of the page navigation.
type NavLink struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor"`
}

// Block is one parsed unit of the page body.
type Block struct {
	ID       string
	Kind     Kind
	Anchor   string // headings only; slug used by nav links
	Language string // code blocks only
	Markdown string
}

// Document is a fully parsed page.
type Document struct {
	Title       string
	Description string
	Hero        string
	Nav         []NavLink
	Blocks      []Block
}

type frontMatter struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Hero        string    `yaml:"hero"`
	Nav         []NavLink `yaml:"nav"`
}

// Parse reads a page source: optional YAML front matter delimited by ---
// lines, then a markdown body.
func Parse(src string) (*Document, error) {
	body := src
	doc := &Document{}

	if strings.HasPrefix(src, "---\n") || src == "---" {
		rest := strings.TrimPrefix(src, "---\n")
		end := strings.Index(rest, "\n---")
		if end < 0 {
			return nil, lerrors.New(lerrors.CodeParseFailed, "unterminated front matter", nil)
		}
		var fm frontMatter
		if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
			return nil, lerrors.New(lerrors.CodeParseFailed, "", fmt.Errorf("front matter: %w", err))
		}
		doc.Title = fm.Title
		doc.Description = fm.Description
		doc.Hero = fm.Hero
		doc.Nav = fm.Nav
		body = rest[end+len("\n---"):]
		body = strings.TrimPrefix(body, "\n")
	}

	doc.Blocks = parseBlocks(body)
	return doc, nil
}

// parseBlocks splits the body into ordered blocks. Fenced code, blockquote
// alerts, and list cards are recognized; everything else groups into
// paragraphs separated by blank lines.
func parseBlocks(body string) []Block {
	var blocks []Block
	var para []string
	seq := 0

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		seq++
		blocks = append(blocks, Block{
			ID:       fmt.Sprintf("block-%d", seq),
			Kind:     KindContent,
			Markdown: strings.Join(para, "\n"),
		})
		para = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(body))
	var fence []string
	fenceLang := ""
	inFence := false
	var group []string
	groupKind := KindContent

	flushGroup := func() {
		if len(group) == 0 {
			return
		}
		seq++
		blocks = append(blocks, Block{
			ID:       fmt.Sprintf("block-%d", seq),
			Kind:     groupKind,
			Markdown: strings.Join(group, "\n"),
		})
		group = nil
	}

	for scanner.Scan() {
		line := scanner.Text()

		if inFence {
			if strings.HasPrefix(line, "```") {
				seq++
				blocks = append(blocks, Block{
					ID:       fmt.Sprintf("block-%d", seq),
					Kind:     KindCode,
					Language: fenceLang,
					Markdown: strings.Join(fence, "\n"),
				})
				fence = nil
				inFence = false
				continue
			}
			fence = append(fence, line)
			continue
		}

		switch {
		case strings.HasPrefix(line, "```"):
			flushPara()
			flushGroup()
			inFence = true
			fenceLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))

		case strings.HasPrefix(line, "#"):
			flushPara()
			flushGroup()
			title := strings.TrimSpace(strings.TrimLeft(line, "#"))
			seq++
			blocks = append(blocks, Block{
				ID:       fmt.Sprintf("block-%d", seq),
				Kind:     KindHeading,
				Anchor:   Slugify(title),
				Markdown: line,
			})

		case strings.HasPrefix(line, "> "):
			flushPara()
			if groupKind != KindAlert {
				flushGroup()
				groupKind = KindAlert
			}
			group = append(group, strings.TrimPrefix(line, "> "))

		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			flushPara()
			if groupKind != KindCard {
				flushGroup()
				groupKind = KindCard
			}
			group = append(group, line)

		case strings.TrimSpace(line) == "":
			flushPara()
			flushGroup()

		default:
			flushGroup()
			para = append(para, line)
		}
	}
	flushPara()
	flushGroup()

	return blocks
}

// Slugify converts a heading title to an anchor slug.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// AnchorIndex returns the index of the block carrying the given anchor,
// or -1 when absent.
func (d *Document) AnchorIndex(anchor string) int {
	for i, b := range d.Blocks {
		if b.Kind == KindHeading && b.Anchor == anchor {
			return i
		}
	}
	return -1
}

// BlockByID returns the block with the given id, or nil.
func (d *Document) BlockByID(id string) *Block {
	for i := range d.Blocks {
		if d.Blocks[i].ID == id {
			return &d.Blocks[i]
		}
	}
	return nil
}

// CodeBlocks returns the ids of all code blocks in document order.
func (d *Document) CodeBlocks() []string {
	var ids []string
	for _, b := range d.Blocks {
		if b.Kind == KindCode {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// AnimationTargets returns the ids of blocks that take the entrance
// animation: content, cards, and alerts.
func (d *Document) AnimationTargets() []string {
	var ids []string
	for _, b := range d.Blocks {
		switch b.Kind {
		case KindContent, KindCard, KindAlert:
			ids = append(ids, b.ID)
		}
	}
	return ids
}
