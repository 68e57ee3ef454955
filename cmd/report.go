package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/datasmiths/shopforge/internal/config"
	"github.com/datasmiths/shopforge/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the reporting query and print the result table",
	Long: `Read the configured SQL file verbatim, execute it against the
store, and print the result set as a table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		fmt.Printf("📄 Executing report query: %s\n\n", cfg.QueryPath)

		if err := report.Run(context.Background(), cfg, os.Stdout); err != nil {
			return err
		}

		color.Green("\n✅ Report complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
