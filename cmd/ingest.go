package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/datasmiths/shopforge/internal/config"
	"github.com/datasmiths/shopforge/internal/db"
	"github.com/datasmiths/shopforge/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Bulk-load the generated CSV files into the store",
	Long: `Read each generated CSV file, validate its columns against the
expected schema, and replace the corresponding store table. Every table
load is its own transaction: a failing table does not undo the ones
loaded before it. Row counts are appended to the ingestion log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, closeLog, err := ingest.NewLogger(cfg.LogPath)
		if err != nil {
			return err
		}
		defer closeLog()

		ctx := context.Background()
		conn, err := db.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := ingest.New(cfg, conn, logger).Run(ctx); err != nil {
			return err
		}

		color.Green("✅ Ingestion complete. Check %s.", cfg.LogPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
