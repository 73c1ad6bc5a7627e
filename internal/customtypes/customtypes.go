// Package customtypes demonstrates user-defined types: structs, sum types
// built from sealed interfaces, numeric enumerations, a recursive linked
// list and package-level constants.
package customtypes

import "github.com/marcodamonte/basics/internal/runner"

// Group returns the custom type demos in presentation order.
func Group() runner.Group {
	return runner.Group{
		Name: "custom_types",
		Demos: []runner.Demo{
			{Name: "struct", Run: Structs},
			{Name: "enum", Run: Enum},
			{Name: "enum_use", Run: EnumUse},
			{Name: "enum_c", Run: EnumC},
			{Name: "enum_linkedlist", Run: EnumLinkedList},
			{Name: "const", Run: Const},
		},
	}
}
