package cmd

import (
	"os"
	"os/signal"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/auth"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/client"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/shop"
	"github.com/spf13/cobra"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the menu and order from the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		api := client.FromConfig(cfg.Client)
		cat, err := catalog.FromSource(ctx, api)
		if err != nil {
			return err
		}
		return shop.New(cat, api, auth.NewLocalProvider(), os.Stdout).Run(ctx, os.Stdin)
	},
}
