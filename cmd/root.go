package cmd

import (
	"fmt"
	"os"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/logger"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const serviceName = "campus-delivery"

var (
	cfgFile string
	cfg     *models.Config
	log     *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "campusdelivery",
	Short: "Campus food ordering: menu, cart and order confirmation",
	Long: `campusdelivery serves the campus canteen menu and the place-order endpoint,
and ships a terminal storefront and a load simulator that talk to it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		log = logger.NewWithWriter(serviceName, cfg.Log.Level, os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./campusdelivery.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("base-url", "http://localhost:3000", "order endpoint base URL used by shop and simulate")
	rootCmd.PersistentFlags().Duration("timeout", 0, "client request timeout, 0 for none")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("client.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("client.timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	rootCmd.AddCommand(serveCmd, menuCmd, shopCmd, simulateCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
