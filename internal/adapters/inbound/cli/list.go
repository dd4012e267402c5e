package cli

import (
	"fmt"
	"path/filepath"

	"github.com/featlint/featlint/internal/adapters/outbound/config"
	"github.com/featlint/featlint/internal/adapters/outbound/scanner"
	"github.com/featlint/featlint/internal/application"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List auditable features",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewAuditService(scanner.New(), config.New())
			features, err := svc.ListFeatures(absPath)
			if err != nil {
				return fmt.Errorf("listing features: %w", err)
			}

			for _, f := range features {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project root")

	return cmd
}
