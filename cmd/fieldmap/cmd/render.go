package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fieldmap/internal/config"
	"fieldmap/internal/record"
	"fieldmap/internal/transform"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		rowText string
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the fixed-width record for one row",
		Long: `Evaluates every field of the transaction type's mapping against a single
row and prints the assembled fixed-width record.

The row is a YAML or JSON mapping of field name to scalar, for example
  --row '{"acct_no": "12345", "status": "OPEN", "amount": "250.00"}'
Quote numeric strings to keep their exact text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := a.mappingPath(nil)
			if err != nil {
				return err
			}

			if a.cfg.Type == "" {
				return fmt.Errorf("no transaction type given (pass --%s or set FIELDMAP_TYPE)", config.KeyType)
			}

			row, err := record.ParseRow([]byte(rowText))
			if err != nil {
				return err
			}

			doc, err := a.registry.Mapping(path, a.cfg.Type)
			if err != nil {
				return err
			}

			logger := a.logger.With().
				Str("run", uuid.NewString()).
				Str("doc", doc.TransactionType).
				Logger()
			engine := transform.New(transform.WithLogger(logger))

			logger.Debug().Int("fields", len(doc.Fields)).Msg("rendering record")

			out := cmd.OutOrStdout()

			if !explain {
				fmt.Fprintln(out, engine.Render(row, doc))
				return nil
			}

			values := engine.TransformRecord(row, doc)
			fmt.Fprintln(out, transform.Join(values))

			t := table.New().Headers("POS", "LEN", "FIELD", "TARGET", "VALUE")
			for _, fv := range values {
				t.Row(
					strconv.Itoa(fv.Position),
					strconv.Itoa(fv.Length),
					fv.Name,
					fv.TargetField,
					strconv.Quote(fv.Value),
				)
			}

			fmt.Fprintln(out, t.Render())

			return nil
		},
	}

	cmd.Flags().String(config.KeyType, "", "transaction type to render")
	cmd.Flags().StringVar(&rowText, "row", "{}", "input row as a YAML or JSON mapping")
	cmd.Flags().BoolVar(&explain, "explain", false, "print each field's position, length and value")

	return cmd
}
