package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/datasmiths/shopforge/internal/config"
	"github.com/datasmiths/shopforge/internal/dataset"
	"github.com/datasmiths/shopforge/internal/synth"
)

var (
	genCustomers int
	genProducts  int
	genOrders    int
	genSeed      int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic dataset and write it to CSV files",
	Long: `Generate all five relations with consistent foreign keys and write
them as CSV files under the configured data directory. Prior files are
fully overwritten. The same seed always produces the same files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		counts := dataset.Counts{
			Customers: cfg.Counts.Customers,
			Products:  cfg.Counts.Products,
			Orders:    cfg.Counts.Orders,
		}
		if cmd.Flags().Changed("customers") {
			counts.Customers = genCustomers
		}
		if cmd.Flags().Changed("products") {
			counts.Products = genProducts
		}
		if cmd.Flags().Changed("orders") {
			counts.Orders = genOrders
		}
		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed = genSeed
		}

		ds, err := dataset.Generate(synth.New(seed), counts)
		if err != nil {
			return err
		}

		if err := dataset.NewWriter(cfg.DataDir).SaveAll(ds); err != nil {
			return err
		}

		color.Green("✅ Synthetic dataset generated in %s", cfg.DataDir)
		fmt.Printf("   customers=%d products=%d orders=%d order_items=%d payments=%d\n",
			len(ds.Customers), len(ds.Products), len(ds.Orders), len(ds.OrderItems), len(ds.Payments))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&genCustomers, "customers", 25, "number of customers to generate")
	generateCmd.Flags().IntVar(&genProducts, "products", 25, "number of products to generate")
	generateCmd.Flags().IntVar(&genOrders, "orders", 25, "number of orders to generate")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "random seed for the run")
}
