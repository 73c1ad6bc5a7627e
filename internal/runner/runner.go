// Package runner invokes demo procedures in a fixed order, printing a
// banner before each one.
package runner

import (
	"io"
	"log/slog"
)

// Demo is one parameterless demonstration. Its only effect is the lines it
// writes to w.
type Demo struct {
	Name string
	Run  func(w io.Writer)
}

// Group is an ordered set of demos about one topic.
type Group struct {
	Name  string
	Demos []Demo
}

// Runner writes banners and demo output to a single stream. It keeps no
// state between calls to Run.
type Runner struct {
	out      io.Writer
	style    Style
	paint    Painter
	headings Headings
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithStyle selects the banner layout.
func WithStyle(s Style) Option { return func(r *Runner) { r.style = s } }

// WithPainter decorates banner text, e.g. with terminal colors.
func WithPainter(p Painter) Option { return func(r *Runner) { r.paint = p } }

// WithHeadings controls when group headings are printed.
func WithHeadings(h Headings) Option { return func(r *Runner) { r.headings = h } }

// WithLogger sets the logger used for per-demo debug records.
func WithLogger(l *slog.Logger) Option { return func(r *Runner) { r.logger = l } }

// New returns a Runner writing to out. Defaults: hash banners, no color,
// group headings only when more than one group runs, logs discarded.
func New(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:      out,
		style:    StyleHash,
		paint:    plain{},
		headings: HeadingsAuto,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run invokes every demo of every group exactly once, in order.
func (r *Runner) Run(groups ...Group) {
	showHeadings := r.headings == HeadingsAlways ||
		(r.headings == HeadingsAuto && len(groups) > 1)

	for _, g := range groups {
		if showHeadings {
			r.heading(g.Name)
		}
		for _, d := range g.Demos {
			r.logger.Debug("running demo", "group", g.Name, "demo", d.Name)
			r.banner(d.Name)
			d.Run(r.out)
		}
	}
}
