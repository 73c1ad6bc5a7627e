package commands

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/basics/internal/catalog"
	"github.com/marcodamonte/basics/internal/tui"
)

func listCmd(a *app) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List demo groups and demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			groups := catalog.All()

			if markdown {
				md := catalog.Markdown(groups)
				if a.profile(out) == termenv.Ascii {
					fmt.Fprint(out, md)
					return nil
				}
				rendered, err := tui.RenderMarkdown(md, 80)
				if err != nil {
					a.logger.Warn("falling back to plain markdown", "error", err)
					fmt.Fprint(out, md)
					return nil
				}
				fmt.Fprint(out, rendered)
				return nil
			}

			for _, g := range groups {
				fmt.Fprintln(out, g.Name)
				for _, d := range g.Demos {
					fmt.Fprintf(out, "  %s/%s\n", g.Name, d.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render the catalog as markdown")
	return cmd
}
