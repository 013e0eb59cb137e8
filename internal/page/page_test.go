package page

import (
	"strings"
	"testing"

	lerrors "lumen/internal/errors"
)

const samplePage = `---
title: Acme Docs
description: Generated documentation
hero: Build sites that build themselves
nav:
  - label: Start
    anchor: getting-started
  - label: Usage
    anchor: usage
---
# Getting Started

Welcome to the generated site.

> Heads up: this page is a preview.

- Fast
- Small

## Usage

` + "```bash\nacme build --out dist\n```" + `

Closing paragraph.
`

func TestParseFrontMatter(t *testing.T) {
	doc, err := Parse(samplePage)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	t.Run("Fields", func(t *testing.T) {
		if doc.Title != "Acme Docs" {
			t.Errorf("title = %q", doc.Title)
		}
		if doc.Hero != "Build sites that build themselves" {
			t.Errorf("hero = %q", doc.Hero)
		}
	})

	t.Run("Nav", func(t *testing.T) {
		if len(doc.Nav) != 2 {
			t.Fatalf("nav length = %d, want 2", len(doc.Nav))
		}
		if doc.Nav[0].Label != "Start" || doc.Nav[0].Anchor != "getting-started" {
			t.Errorf("nav[0] = %+v", doc.Nav[0])
		}
	})
}

func TestParseBlocks(t *testing.T) {
	doc, err := Parse(samplePage)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	kinds := make([]Kind, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		kinds = append(kinds, b.Kind)
	}
	want := []Kind{KindHeading, KindContent, KindAlert, KindCard, KindHeading, KindCode, KindContent}
	if len(kinds) != len(want) {
		t.Fatalf("block kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("block %d kind = %s, want %s", i, kinds[i], want[i])
		}
	}

	t.Run("HeadingAnchors", func(t *testing.T) {
		if doc.Blocks[0].Anchor != "getting-started" {
			t.Errorf("anchor = %q", doc.Blocks[0].Anchor)
		}
		if doc.Blocks[4].Anchor != "usage" {
			t.Errorf("anchor = %q", doc.Blocks[4].Anchor)
		}
	})

	t.Run("CodeLanguage", func(t *testing.T) {
		code := doc.Blocks[5]
		if code.Language != "bash" {
			t.Errorf("language = %q", code.Language)
		}
		if code.Markdown != "acme build --out dist" {
			t.Errorf("code content = %q", code.Markdown)
		}
	})

	t.Run("AlertStripsMarker", func(t *testing.T) {
		if strings.HasPrefix(doc.Blocks[2].Markdown, "> ") {
			t.Error("alert content should not keep the quote marker")
		}
	})
}

func TestParseWithoutFrontMatter(t *testing.T) {
	doc, err := Parse("Just one paragraph.\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Title != "" {
		t.Errorf("title = %q, want empty", doc.Title)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != KindContent {
		t.Fatalf("blocks = %+v", doc.Blocks)
	}
}

func TestParseUnterminatedFrontMatter(t *testing.T) {
	_, err := Parse("---\ntitle: broken\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if !lerrors.IsCode(err, lerrors.CodeParseFailed) {
		t.Errorf("expected parse_failed, got %s", lerrors.CodeOf(err))
	}
}

func TestParseInvalidFrontMatterYAML(t *testing.T) {
	_, err := Parse("---\ntitle: [unclosed\n---\nbody\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if !lerrors.IsCode(err, lerrors.CodeParseFailed) {
		t.Errorf("expected parse_failed, got %s", lerrors.CodeOf(err))
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Getting Started":    "getting-started",
		"  Spaces  ":         "spaces",
		"CLI & API":          "cli--api",
		"v2.0 Release Notes": "v20-release-notes",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDocumentLookups(t *testing.T) {
	doc, err := Parse(samplePage)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	t.Run("AnchorIndex", func(t *testing.T) {
		if i := doc.AnchorIndex("usage"); i != 4 {
			t.Errorf("AnchorIndex(usage) = %d, want 4", i)
		}
		if i := doc.AnchorIndex("missing"); i != -1 {
			t.Errorf("AnchorIndex(missing) = %d, want -1", i)
		}
	})

	t.Run("CodeBlocks", func(t *testing.T) {
		ids := doc.CodeBlocks()
		if len(ids) != 1 {
			t.Fatalf("code blocks = %v", ids)
		}
	})

	t.Run("AnimationTargets", func(t *testing.T) {
		ids := doc.AnimationTargets()
		// content, alert, card, content
		if len(ids) != 4 {
			t.Errorf("animation targets = %v, want 4 ids", ids)
		}
	})

	t.Run("BlockByID", func(t *testing.T) {
		b := doc.BlockByID(doc.Blocks[1].ID)
		if b == nil || b.Kind != KindContent {
			t.Errorf("BlockByID = %+v", b)
		}
		if doc.BlockByID("nope") != nil {
			t.Error("expected nil for unknown id")
		}
	})
}
