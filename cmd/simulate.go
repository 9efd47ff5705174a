package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/client"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/simulator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate students ordering against a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		api := client.FromConfig(cfg.Client)
		cat, err := catalog.FromSource(ctx, api)
		if err != nil {
			return err
		}

		output, err := simulator.NewOutput(ctx, cfg.Simulate, os.Stdout)
		if err != nil {
			return err
		}

		sim := simulator.NewSimulator(cfg.Simulate, cat, api, output, log)
		sim.Progress = os.Stderr
		summary, runErr := sim.Run(ctx)
		if err := output.Close(); err != nil && runErr == nil {
			runErr = err
		}
		fmt.Fprintln(os.Stderr, summary)
		return runErr
	},
}

func init() {
	simulateCmd.Flags().Int("students", 20, "number of simulated students")
	simulateCmd.Flags().Int("orders", 100, "number of orders to place")
	simulateCmd.Flags().Int("max-items", 4, "largest cart a student builds")
	simulateCmd.Flags().Int64("seed", 42, "random seed")
	simulateCmd.Flags().String("output-format", "console", "console, json, parquet or s3")
	simulateCmd.Flags().String("output-path", "", "output file for json and parquet")

	viper.BindPFlag("simulate.students", simulateCmd.Flags().Lookup("students"))
	viper.BindPFlag("simulate.orders", simulateCmd.Flags().Lookup("orders"))
	viper.BindPFlag("simulate.max_items", simulateCmd.Flags().Lookup("max-items"))
	viper.BindPFlag("simulate.seed", simulateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("simulate.output_format", simulateCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("simulate.output_path", simulateCmd.Flags().Lookup("output-path"))
}
