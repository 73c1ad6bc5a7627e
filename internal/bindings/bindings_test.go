package bindings_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/basics/internal/bindings"
)

func output(run func(io.Writer)) string {
	var buf bytes.Buffer
	run(&buf)
	return buf.String()
}

func TestDemos(t *testing.T) {
	tests := []struct {
		name string
		run  func(io.Writer)
		want string
	}{
		{"variable", bindings.Variable, "An integer: 1\nA boolean: true\nMeet the unit value: {}\n"},
		{"mutability", bindings.Mutability, "Before mutation: 1\nAfter mutation: 2\n"},
		{"scope", bindings.Scope, "inner short: 2\nouter long: 1\n"},
		{"shadow", bindings.Shadow, "before being shadowed: 1\n" +
			"shadowed in inner block: abc\n" +
			"outside inner block: 1\n" +
			"shadowed in outer block: 2\n"},
		{"declare", bindings.Declare, "a binding: 144\nanother binding: 1\n"},
		{"freeze", bindings.Freeze, "  frozen 7\nunfrozen 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, output(tt.run))
		})
	}
}

func TestGroup_Order(t *testing.T) {
	g := bindings.Group()

	var names []string
	for _, d := range g.Demos {
		names = append(names, d.Name)
	}
	assert.Equal(t, "bindings", g.Name)
	assert.Equal(t, []string{
		"variable_binding",
		"mutability_binding",
		"scope_binding",
		"shadow_binding",
		"declare_binding",
		"freeze_binding",
	}, names)
}
