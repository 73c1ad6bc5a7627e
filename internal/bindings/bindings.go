// Package bindings demonstrates how Go declares, assigns, scopes and
// shadows variables.
package bindings

import (
	"fmt"
	"io"

	"github.com/marcodamonte/basics/internal/runner"
)

// Group returns the binding demos in presentation order.
func Group() runner.Group {
	return runner.Group{
		Name: "bindings",
		Demos: []runner.Demo{
			{Name: "variable_binding", Run: Variable},
			{Name: "mutability_binding", Run: Mutability},
			{Name: "scope_binding", Run: Scope},
			{Name: "shadow_binding", Run: Shadow},
			{Name: "declare_binding", Run: Declare},
			{Name: "freeze_binding", Run: Freeze},
		},
	}
}

// Variable copies values between bindings. Assigning a uint32 copies it;
// the two variables are independent afterwards.
func Variable(w io.Writer) {
	var anInteger uint32 = 1
	aBoolean := true
	unit := struct{}{}

	copiedInteger := anInteger

	fmt.Fprintf(w, "An integer: %v\n", copiedInteger)
	fmt.Fprintf(w, "A boolean: %v\n", aBoolean)
	fmt.Fprintf(w, "Meet the unit value: %v\n", unit)

	// An unused local does not compile. Assigning to the blank identifier
	// discards the value explicitly.
	var unusedVariable uint32 = 3
	_ = unusedVariable
	_ = uint32(2)
}

// Mutability contrasts a constant with a variable. Go variables are always
// mutable; read-only values are constants.
func Mutability(w io.Writer) {
	const immutableBinding int32 = 1
	var mutableBinding int32 = 1

	fmt.Fprintf(w, "Before mutation: %d\n", mutableBinding)

	mutableBinding += 1

	fmt.Fprintf(w, "After mutation: %d\n", mutableBinding)

	// immutableBinding += 1 does not compile: cannot assign to a constant.
	_ = immutableBinding
}

// Scope shows that a binding declared in a block is gone once the block ends.
func Scope(w io.Writer) {
	longLivedBinding := int32(1)

	{
		shortLivedBinding := int32(2)
		fmt.Fprintf(w, "inner short: %d\n", shortLivedBinding)
	}

	// shortLivedBinding is undefined here.
	fmt.Fprintf(w, "outer long: %d\n", longLivedBinding)
}

// Shadow redeclares a name inside a block, even with a different type. The
// outer binding is untouched once the block ends.
func Shadow(w io.Writer) {
	shadowedBinding := int32(1)

	{
		fmt.Fprintf(w, "before being shadowed: %d\n", shadowedBinding)

		shadowedBinding := "abc"

		fmt.Fprintf(w, "shadowed in inner block: %s\n", shadowedBinding)
	}
	fmt.Fprintf(w, "outside inner block: %d\n", shadowedBinding)

	// := cannot redeclare a name in the same scope, so the outer binding is
	// reassigned instead.
	shadowedBinding = 2
	fmt.Fprintf(w, "shadowed in outer block: %d\n", shadowedBinding)
}

// Declare separates declaration from initialization. A declared variable
// holds its zero value until assigned.
func Declare(w io.Writer) {
	var aBinding int32

	{
		x := int32(12)
		aBinding = x * x
	}

	fmt.Fprintf(w, "a binding: %d\n", aBinding)

	var anotherBinding int32
	anotherBinding = 1

	fmt.Fprintf(w, "another binding: %d\n", anotherBinding)
}

// Freeze copies a variable into an inner block. Changes to the outer
// variable are possible again once the copy goes out of scope.
func Freeze(w io.Writer) {
	mutableInteger := int32(7)

	{
		frozen := mutableInteger
		fmt.Fprintf(w, "  frozen %d\n", frozen)
	}

	mutableInteger = 3
	fmt.Fprintf(w, "unfrozen %d\n", mutableInteger)
}
