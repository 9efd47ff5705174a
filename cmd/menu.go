package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/factories"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu [category]",
	Short: "Print the catalog, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(cmd.Context(), cfg.Catalog)
		if err != nil {
			return err
		}
		query, _ := cmd.Flags().GetString("query")

		categories := cat.CategoryNames()
		if len(args) == 1 {
			if !cat.HasCategory(args[0]) {
				return fmt.Errorf("%w: %s", catalog.ErrUnknownCategory, args[0])
			}
			categories = args[:1]
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		defer tw.Flush()
		for _, name := range categories {
			fmt.Fprintf(tw, "%s\n", name)
			for _, item := range cat.Filter(name, query) {
				fmt.Fprintf(tw, "  %d\t%s\t₹%g\t★ %.1f\n", item.ID, item.Name, item.Price, item.Rating)
			}
		}
		return nil
	},
}

var menuSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the built-in catalog to Postgres",
	Long: `seed creates the menu_items table if needed and writes the built-in catalog
to catalog.database_url. --fake adds generated items to every category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if cfg.Catalog.DatabaseURL == "" {
			return fmt.Errorf("catalog.database_url is required")
		}
		reset, _ := cmd.Flags().GetBool("reset")
		fake, _ := cmd.Flags().GetInt("fake")

		categories := catalog.DefaultCategories()
		if fake > 0 {
			f := factories.NewMenuItemFactory(cfg.Simulate.Seed, 100)
			for i := range categories {
				categories[i].Items = append(categories[i].Items, f.CreateCategory(categories[i].Name, fake).Items...)
			}
		}
		if _, err := catalog.New(categories); err != nil {
			return err
		}

		pool, err := postgres.Connect(ctx, cfg.Catalog.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		repo := postgres.NewMenuItemRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
		if reset {
			if err := repo.DeleteAll(ctx); err != nil {
				return err
			}
		}
		if err := repo.BulkCreate(ctx, categories); err != nil {
			return err
		}
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		log.Info("catalog_seeded", "", "Catalog written to Postgres", map[string]any{"items": n})
		return nil
	},
}

func init() {
	menuCmd.Flags().StringP("query", "q", "", "case-insensitive name filter")
	menuSeedCmd.Flags().Bool("reset", false, "delete existing items first")
	menuSeedCmd.Flags().Int("fake", 0, "generated items to add per category")
	menuCmd.AddCommand(menuSeedCmd)
}
