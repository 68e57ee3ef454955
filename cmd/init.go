package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/datasmiths/shopforge/internal/config"
)

const configFileName = "shopforge.config.json"

const defaultReportQuery = `SELECT
    o.order_id,
    c.name AS customer_name,
    c.city,
    o.order_date,
    o.total_amount,
    COUNT(oi.item_id) AS items,
    SUM(oi.quantity * oi.item_price) AS items_total,
    p.method AS payment_method,
    p.status AS payment_status
FROM orders o
JOIN customers c ON c.customer_id = o.customer_id
JOIN order_items oi ON oi.order_id = o.order_id
JOIN payments p ON p.order_id = o.order_id
GROUP BY o.order_id, c.name, c.city, o.order_date, o.total_amount, p.method, p.status
ORDER BY o.order_id;
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a shopforge project in the current directory",
	Long: `Create the default shopforge.config.json, the data, db, log, and
sql directories, and the default reporting query.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configFileName); err == nil {
			return fmt.Errorf("project already initialized: %s exists", configFileName)
		}

		cfg := config.Default()

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}
		if err := os.WriteFile(configFileName, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", configFileName, err)
		}

		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}

		if _, err := os.Stat(cfg.QueryPath); os.IsNotExist(err) {
			if err := os.WriteFile(cfg.QueryPath, []byte(defaultReportQuery), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", cfg.QueryPath, err)
			}
		}

		color.Green("✅ Initialized shopforge project")
		fmt.Printf("   config: %s\n   data:   %s\n   store:  %s\n   query:  %s\n",
			configFileName, cfg.DataDir, cfg.Database.Path, cfg.QueryPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
