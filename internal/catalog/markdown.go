package catalog

import (
	"fmt"
	"strings"

	"github.com/marcodamonte/basics/internal/runner"
)

// Markdown describes groups as a markdown document, one section per group.
func Markdown(groups []runner.Group) string {
	var b strings.Builder
	b.WriteString("# Demos\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "\n## %s\n\n", g.Name)
		for _, d := range g.Demos {
			fmt.Fprintf(&b, "- `%s/%s`\n", g.Name, d.Name)
		}
	}
	return b.String()
}
