package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tastenamibia/recipe-catalog/backend/config"
	"github.com/tastenamibia/recipe-catalog/backend/internal/database"
	"github.com/tastenamibia/recipe-catalog/backend/internal/service"
)

var (
	seedFile    string
	dryRun      bool
	stopOnError bool
)

var rootCmd = &cobra.Command{
	Use:   "seed_recipes",
	Short: "Load recipes from a YAML file into the catalog",
	Long: `Reads a YAML file of recipes and submits each one through the same
validation as the public submission endpoint. Rejected recipes are reported
and skipped unless --stop-on-error is set.`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVarP(&seedFile, "file", "f", "cmd/seed_recipes/recipes.yaml", "YAML file with recipes to load")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without writing to the database")
	rootCmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Abort on the first rejected recipe")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	recipes, err := loadSeedFile(seedFile)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d recipes from %s", len(recipes), seedFile)

	var submitter service.IRecipeSubmissionService = dryRunSubmitter{}
	if !dryRun {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		db, err := database.New(cfg)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		submitter = service.NewRecipeSubmissionService(db)
	}

	report, err := seed(cmd.Context(), submitter, recipes, stopOnError)
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d, rejected %d\n", report.created, len(report.rejected))
	for _, r := range report.rejected {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", r.name, r.reason)
	}
	return err
}
