package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fieldmap/internal/mapping"
)

func newFmtCommand(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [path]",
		Short: "Print a mapping source in normalized form",
		Long: `Loads and validates the mapping source, then prints it back with defaults
applied (targetField filled in, pad directions lower-cased, single sources
as scalars). Comments are not preserved. With --write the file is
rewritten in place.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.mappingPath(args)
			if err != nil {
				return err
			}

			docs, err := mapping.LoadDocuments(path)
			if err != nil {
				return err
			}

			data, err := mapping.MarshalDocuments(docs)
			if err != nil {
				return err
			}

			if !write {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("failed to stat %s: %w", path, err)
			}

			if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			a.registry.Invalidate(path)
			a.logger.Info().Str("path", path).Int("documents", len(docs)).Msg("mapping source rewritten")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file instead of printing it")

	return cmd
}
