package tui_test

import (
	"os"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/basics/internal/runner"
	"github.com/marcodamonte/basics/internal/tui"
)

var _ runner.Painter = tui.Painter{}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, termenv.TrueColor, tui.ProfileFor("always", os.Stdout.Fd()))
	assert.Equal(t, termenv.Ascii, tui.ProfileFor("never", os.Stdout.Fd()))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, termenv.Ascii, tui.ProfileFor("auto", f.Fd()), "regular files are not terminals")
}

func TestPainter_AsciiIsPlain(t *testing.T) {
	p := tui.NewPainter(termenv.Ascii)

	assert.Equal(t, "const", p.Banner("const"))
	assert.Equal(t, "==> bindings", p.Heading("==> bindings"))
}

func TestPainter_ColorWrapsText(t *testing.T) {
	p := tui.NewPainter(termenv.TrueColor)

	got := p.Banner("const")
	assert.Contains(t, got, "const")
	assert.True(t, strings.HasPrefix(got, "\x1b["), "expected an escape sequence, got %q", got)
}

func TestRenderMarkdown(t *testing.T) {
	out, err := tui.RenderMarkdown("# Demos\n\n- `bindings/scope_binding`\n", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "bindings/scope_binding")
}
