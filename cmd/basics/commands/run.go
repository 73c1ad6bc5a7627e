package commands

import (
	"github.com/spf13/cobra"
)

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [topic...]",
		Short: "Run selected demo groups or single demos",
		Long: `Run the given topics in the order they are named. A topic is a group
name such as "bindings" or a single demo such as "custom_types/enum_c".
With no topics the configured topics run, or every group if none are set.`,
		Example: "  basics run conversion\n  basics run custom_types/enum_linkedlist expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			topics := args
			if len(topics) == 0 {
				topics = a.cfg.Topics
			}
			return a.run(cmd.OutOrStdout(), topics)
		},
	}
}
