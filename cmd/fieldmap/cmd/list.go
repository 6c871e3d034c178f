package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [path]",
		Short: "List the transaction types defined by a mapping source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.mappingPath(args)
			if err != nil {
				return err
			}

			docs, err := a.registry.Documents(path)
			if err != nil {
				return err
			}

			t := table.New().Headers("TRANSACTION TYPE", "SOURCE SYSTEM", "JOB", "FIELDS", "RECORD LENGTH")
			for _, doc := range docs {
				t.Row(
					doc.TransactionType,
					doc.SourceSystem,
					doc.JobName,
					fmt.Sprint(len(doc.Fields)),
					fmt.Sprint(doc.RecordLength()),
				)
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())

			return nil
		},
	}
}
