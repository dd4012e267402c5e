package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/featlint/featlint/internal/adapters/outbound/config"
	"github.com/featlint/featlint/internal/adapters/outbound/gitinfo"
	"github.com/featlint/featlint/internal/adapters/outbound/history"
	"github.com/featlint/featlint/internal/adapters/outbound/markdown"
	"github.com/featlint/featlint/internal/adapters/outbound/scanner"
	"github.com/featlint/featlint/internal/adapters/outbound/tui"
	"github.com/featlint/featlint/internal/application"
	"github.com/featlint/featlint/internal/domain"
	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	var (
		path        string
		jsonOutput  bool
		strict      bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "audit <feature>",
		Short: "Audit a feature and write its compliance report",
		Long:  "Scan features/<feature>/ for source files, run all convention checks, and write docs/documentation/audit-<feature>.md.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feature := args[0]

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewAuditService(scanner.New(), config.New())

			report, err := svc.AuditFeature(absPath, feature)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			// Attach git commit hash if available
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(absPath); err == nil {
				report.CommitHash = hash
			}

			cfg, err := svc.Config(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			outPath, err := markdown.NewWriter().Write(absPath, report, cfg)
			if err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			// Save to history
			hist := history.New()
			entry := domain.AuditEntry{
				Timestamp:  time.Now().Format(time.RFC3339),
				CommitHash: report.CommitHash,
				Feature:    report.Feature,
				Digest:     report.Digest,
				Result:     string(report.Result()),
				Findings:   len(report.Findings),
			}
			_ = hist.Save(absPath, entry) // best-effort

			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(report))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)

			if strict && report.Result() == domain.VerdictFail {
				return fmt.Errorf("feature %s failed the compliance audit", feature)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project root to audit")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any category fails")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show audit history after running")

	return cmd
}

func renderJSON(cmd *cobra.Command, report *domain.AuditReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
