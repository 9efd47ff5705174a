package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/events"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cat, err := catalog.Load(ctx, cfg.Catalog)
		if err != nil {
			return err
		}
		log.Info("catalog_loaded", "", "Catalog loaded", map[string]any{
			"source":     cfg.Catalog.Source,
			"categories": cat.CategoryNames(),
		})

		publisher, err := events.New(cfg.Events, log)
		if err != nil {
			return err
		}
		defer publisher.Close()

		return server.New(cfg, cat, publisher, log).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().Int("port", 3000, "HTTP port")
	serveCmd.Flags().String("catalog-source", "static", "catalog source: static, file, s3, postgres")
	serveCmd.Flags().String("event-sink", "none", "order event sink: none, log, kafka, rabbitmq")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("catalog.source", serveCmd.Flags().Lookup("catalog-source"))
	viper.BindPFlag("events.sink", serveCmd.Flags().Lookup("event-sink"))
}
