package cmd

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// languagesCmd represents the languages command.
var languagesCmd = newLanguagesCmd()

func newLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Long:  "List every language glance can highlight, with its aliases and file patterns.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Language", "Aliases", "File Patterns"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetColumnAlignment([]int{
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
			})

			for _, language := range assets.Languages() {
				table.Append([]string{
					language.Name,
					strings.Join(language.Aliases, ", "),
					strings.Join(language.Filenames, ", "),
				})
			}

			table.Render()

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
