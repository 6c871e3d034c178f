package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldmap/internal/diagnostic"
	"fieldmap/internal/mapping"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "Load and validate a mapping source",
		Long: `Decodes and validates every document in the mapping source and prints
its diagnostics. Exits non-zero when any document has errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.mappingPath(args)
			if err != nil {
				return err
			}

			return a.runCheck(cmd, path)
		},
	}
}

func (a *app) runCheck(cmd *cobra.Command, path string) error {
	reports, err := mapping.CheckFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0

	for i := range reports {
		r := &reports[i]

		name := r.TransactionType
		if name == "" {
			name = "<undecodable>"
		}

		status := okStyle.Render("ok")
		if !r.OK() {
			status = failStyle.Render("FAIL")
			failed++
		}

		fmt.Fprintf(out, "%s document %d %s (%d fields)\n", status, r.Index, headerStyle.Render(name), r.Fields)

		if r.Err != nil {
			fmt.Fprintf(out, "  %s %v\n", severityTag(diagnostic.SeverityError), r.Err)
			continue
		}

		for _, d := range r.Diagnostics.All() {
			fmt.Fprintf(out, "  %s %s\n", severityTag(d.Severity), d.String())
		}
	}

	a.logger.Debug().Str("path", path).Int("documents", len(reports)).Int("failed", failed).Msg("check finished")

	if failed > 0 {
		return fmt.Errorf("%s: %d of %d documents failed validation", path, failed, len(reports))
	}

	return nil
}
