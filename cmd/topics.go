package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsage-cli/finsage/internal/model"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the selectable advice topics",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		for _, t := range model.Topics {
			fmt.Fprintln(out, t)
		}
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
