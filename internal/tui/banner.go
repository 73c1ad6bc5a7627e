// Package tui decorates terminal output: colored banners through termenv
// and markdown rendering through glamour.
package tui

import (
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ProfileFor picks a color profile for mode ("auto", "always" or "never").
// In auto mode color is used only when fd is a terminal.
func ProfileFor(mode string, fd uintptr) termenv.Profile {
	switch mode {
	case "always":
		return termenv.TrueColor
	case "never":
		return termenv.Ascii
	}
	if !term.IsTerminal(int(fd)) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Painter colors banners and group headings with a fixed palette.
type Painter struct {
	profile termenv.Profile
}

// NewPainter returns a Painter for profile p; Ascii leaves text unchanged.
func NewPainter(p termenv.Profile) Painter {
	return Painter{profile: p}
}

func (p Painter) Banner(s string) string {
	return p.paint(s, "#a78bfa", false)
}

func (p Painter) Heading(s string) string {
	return p.paint(s, "#f472b6", true)
}

func (p Painter) paint(s, hex string, bold bool) string {
	if p.profile == termenv.Ascii {
		return s
	}
	st := p.profile.String(s).Foreground(p.profile.Color(hex))
	if bold {
		st = st.Bold()
	}
	return st.String()
}
