package wizard

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Headless decides whether prompts can be shown.
type Headless struct {
	forced *bool
	fd     uintptr
}

// NewHeadless detects headless mode from the TTY state of os.Stdin.
func NewHeadless() *Headless {
	return &Headless{fd: os.Stdin.Fd()}
}

// IsHeadless reports whether the wizard must be skipped. A forced value
// wins over TTY detection.
func (h *Headless) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(h.fd) && !isatty.IsCygwinTerminal(h.fd)
}

// Force overrides TTY detection.
func (h *Headless) Force(headless bool) {
	h.forced = &headless
}
