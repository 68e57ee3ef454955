package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "shopforge",
	Short: "Synthesize, ingest, and report on a relational e-commerce dataset",
	Long: `Shopforge builds a small synthetic e-commerce dataset (customers,
products, orders, order items, payments) with consistent foreign keys,
writes it to CSV files, bulk-loads the files into a relational store, and
runs a reporting join against the result.

The pipeline is strictly sequential; each stage is its own command:

  shopforge generate   synthesize the dataset and write the CSV files
  shopforge ingest     replace the store tables from the CSV files
  shopforge report     run the reporting query and print the result`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./shopforge.config.json)")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("shopforge.config")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()
}
