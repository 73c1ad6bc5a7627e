// Package expressions demonstrates computing a value from a block of
// statements.
package expressions

import (
	"fmt"
	"io"

	"github.com/marcodamonte/basics/internal/runner"
)

// Group returns the expression demos.
func Group() runner.Group {
	return runner.Group{
		Name: "expressions",
		Demos: []runner.Demo{
			{Name: "block_expression", Run: Block},
		},
	}
}

// Block uses immediately invoked function literals as block expressions.
// Go blocks are statements, so a block that yields a value is written as a
// func literal with a return.
func Block(w io.Writer) {
	x := uint32(5)

	y := func() uint32 {
		xSquared := x * x
		xCube := xSquared * x

		return xCube + xSquared + x
	}()

	// Discarding the result leaves nothing but the empty value.
	z := func() struct{} {
		_ = 2 * x
		return struct{}{}
	}()

	fmt.Fprintf(w, "x is %v\n", x)
	fmt.Fprintf(w, "y is %v\n", y)
	fmt.Fprintf(w, "z is %v\n", z)
}
