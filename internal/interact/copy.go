package interact

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"

	"lumen/internal/debug"
	lerrors "lumen/internal/errors"
)

// Copy affordance labels.
const (
	LabelCopy   = "Copy"
	LabelCopied = "Copied!"
)

// RevertWindow is how long the success label shows before reverting.
const RevertWindow = 2000 * time.Millisecond

// Clipboard is the system clipboard boundary. Writes may fail due to
// platform or permission restrictions; failures are never fatal.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// CopyButton is the per-code-block copy control. Label transitions
// Copy→Copied! on a successful write and reverts after RevertWindow.
// Repeated activations replace the revert deadline, so the last successful
// activation wins and the label is eventually Copy again.
type CopyButton struct {
	BlockID string

	clip     Clipboard
	text     string
	copied   bool
	deadline time.Time
}

// NewCopyButton builds the affordance for one code block. The block's text
// is captured at initialization, stripped of any ANSI styling so the
// clipboard receives plain text.
func NewCopyButton(blockID, text string, clip Clipboard) *CopyButton {
	return &CopyButton{
		BlockID: blockID,
		clip:    clip,
		text:    ansi.Strip(text),
	}
}

// Label returns the current control label.
func (b *CopyButton) Label() string {
	if b.copied {
		return LabelCopied
	}
	return LabelCopy
}

// Activate writes the block text to the clipboard. On success the label
// flips and the revert deadline restarts; on failure the label is left
// unchanged and the error goes to the diagnostic channel only.
func (b *CopyButton) Activate(now time.Time) {
	if b.clip == nil {
		return
	}
	if err := b.clip.WriteAll(b.text); err != nil {
		structured := lerrors.New(lerrors.CodeClipboardDenied, "", err)
		debug.Logf("interact: copy %s: %v", b.BlockID, structured)
		return
	}
	b.copied = true
	b.deadline = now.Add(RevertWindow)
}

// Tick reverts the label once the deadline has passed.
func (b *CopyButton) Tick(now time.Time) {
	if b.copied && !now.Before(b.deadline) {
		b.copied = false
	}
}

// Pending reports whether a reversion is still outstanding, so callers
// know to keep ticking.
func (b *CopyButton) Pending() bool {
	return b.copied
}
