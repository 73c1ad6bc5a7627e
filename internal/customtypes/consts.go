package customtypes

import (
	"fmt"
	"io"
)

// Package-level constants are fixed at compile time and cannot be assigned.
const (
	Language  = "Go"
	Threshold = 10
)

// IsBig reports whether n exceeds Threshold.
func IsBig(n int32) bool { return n > Threshold }

// Const reads the package-level constants.
func Const(w io.Writer) {
	n := int32(16)

	size := "small"
	if IsBig(n) {
		size = "big"
	}

	fmt.Fprintf(w, "This is %s\n", Language)
	fmt.Fprintf(w, "The threshold is %d\n", Threshold)
	fmt.Fprintf(w, "%d is %s\n", n, size)

	// Threshold = 5 does not compile: cannot assign to a constant.
}
