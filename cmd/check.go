package cmd

import (
	"encoding/json"
	"fmt"

	"record-merger/core/config"
	"record-merger/core/database"
	"record-merger/core/logger"
	"record-merger/core/storage"
	"record-merger/feature/product"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	fixFlag    bool
	jsonOutput bool
)

// checkCmd verifies that storage, feed and database are ready for a reconcile.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the bucket, supplier feed and products table",
	Long: `Checks that the storage bucket exists, the supplier feed can be downloaded and
decoded, and the products table has every column the reconciler writes.
With --fix a missing bucket is created.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		// Database is optional here; its absence is reported as a problem
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
		}

		svc, err := product.NewService(client, cfg.Storage.Bucket, logg, db, cfg.Reconcile)
		if err != nil {
			return err
		}

		report, err := svc.Check(ctx, fixFlag, cfg.Storage.Region)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else if report.Healthy() {
			logg.Info("All checks passed",
				zap.String("bucket", report.Bucket),
				zap.Bool("bucket_created", report.BucketCreated),
				zap.Int("feed_products", report.FeedProducts),
			)
		} else {
			for _, p := range report.Problems {
				logg.Warn("Check failed", zap.String("problem", p))
			}
		}

		if !report.Healthy() {
			return fmt.Errorf("%d check(s) failed", len(report.Problems))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when it is missing")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the check report as JSON")
	RootCmd.AddCommand(checkCmd)
}
