package runner

import (
	"fmt"
	"strings"
)

// Style is a banner layout.
type Style string

const (
	// StyleHash frames the demo name between two rows of 40 '#'.
	StyleHash Style = "hash"
	// StyleRule prints a blank line and the name between ━━━ marks.
	StyleRule Style = "rule"
)

// Headings decides when a group name is printed before its demos.
type Headings int

const (
	HeadingsAuto Headings = iota // only when more than one group runs
	HeadingsAlways
	HeadingsNever
)

// Painter decorates banner text. Implementations must not change the text
// itself, only wrap it.
type Painter interface {
	Banner(s string) string
	Heading(s string) string
}

type plain struct{}

func (plain) Banner(s string) string  { return s }
func (plain) Heading(s string) string { return s }

var hashRow = strings.Repeat("#", 40)

// ParseStyle maps a config value to a Style.
func ParseStyle(s string) (Style, bool) {
	switch Style(s) {
	case StyleHash, StyleRule:
		return Style(s), true
	}
	return "", false
}

func (r *Runner) banner(name string) {
	switch r.style {
	case StyleRule:
		fmt.Fprintf(r.out, "\n%s\n", r.paint.Banner("━━━ "+name+" ━━━"))
	default:
		fmt.Fprintln(r.out, r.paint.Banner(hashRow))
		fmt.Fprintln(r.out, r.paint.Banner(name))
		fmt.Fprintln(r.out, r.paint.Banner(hashRow))
	}
}

func (r *Runner) heading(name string) {
	fmt.Fprintln(r.out, r.paint.Heading("==> "+name))
}
