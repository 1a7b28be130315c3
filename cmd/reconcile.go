package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"record-merger/core/config"
	"record-merger/core/database"
	"record-merger/core/logger"
	"record-merger/core/reconcile"
	"record-merger/core/storage"
	"record-merger/feature/product"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile products command
	modeProducts   string
	purgeProducts  bool
	insertProducts bool
	dryRunProducts bool
	yesConfirm     bool
	reportFormat   string
	saveReport     bool
)

// maxSampleActions bounds the actions printed in log format.
const maxSampleActions = 5

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile records between a feed and the database",
	Long: `Reconcile records to detect matches, conflicts and records present on one side only.
Supports merging feed values into stored records, inserting new ones and purging stale ones.`,
}

// productsReconcileCmd reconciles the supplier feed against the products table.
var productsReconcileCmd = &cobra.Command{
	Use:   "products",
	Short: "Reconcile products (report + optionally merge/insert/purge)",
	Long: `Reconcile the supplier product feed against the products table.

Reports matched products with their conflicting fields, feed-only products
and stored-only products. Optionally merges feed values, inserts new products
or purges products no longer in the feed.

Examples:
  # Report only
  reconcile products

  # Fill empty database fields from the feed
  reconcile products --mode merge-missing --yes

  # Overwrite from the feed, insert and purge, as YAML
  reconcile products --mode merge --insert --purge --yes --format yaml

  # Plan everything but write nothing
  reconcile products --mode merge --purge --dry-run`,
	RunE: runProductsReconcile,
}

func init() {
	reconcileCmd.AddCommand(productsReconcileCmd)

	flags := productsReconcileCmd.Flags()
	flags.StringVar(&modeProducts, "mode", string(reconcile.ModeCompare), fmt.Sprintf("Reconcile mode %v", reconcile.Modes))
	flags.BoolVar(&purgeProducts, "purge", false, "Delete stored products missing from the feed")
	flags.BoolVar(&insertProducts, "insert", false, "Insert feed products missing from the database")
	flags.BoolVar(&dryRunProducts, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	flags.BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	flags.StringVar(&reportFormat, "format", "log", "Report output: log, json or yaml")
	flags.BoolVar(&saveReport, "save-report", false, "Store the report as JSON in the bucket")

	RootCmd.AddCommand(reconcileCmd)
}

func runProductsReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	mode, err := reconcile.ParseMode(modeProducts)
	if err != nil {
		return err
	}
	switch reportFormat {
	case "log", product.FormatJSON, product.FormatYAML:
	default:
		return fmt.Errorf("unknown report format %q", reportFormat)
	}

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	l.Info("Starting product reconciliation", zap.String("mode", string(mode)))

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc, err := product.NewService(client, cfg.Storage.Bucket, l, db, cfg.Reconcile)
	if err != nil {
		return fmt.Errorf("failed to configure reconcile engine: %w", err)
	}

	opts := product.Options{
		Mode:     mode,
		DoPurge:  purgeProducts,
		DoInsert: insertProducts,
		DryRun:   dryRunProducts,
	}

	l.Info("Planning reconciliation...")
	report, err := svc.Reconcile(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	if reportFormat == "log" {
		printReconcileReport(l, report.Plan)
	} else if err := report.Encode(cmd.OutOrStdout(), reportFormat); err != nil {
		return err
	}

	if saveReport {
		key, err := svc.WriteReport(ctx, report)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		l.Info("Report saved", zap.String("bucket", cfg.Storage.Bucket), zap.String("key", key))
	}

	if len(report.Plan.Actions) == 0 {
		if !mode.Merges() && !purgeProducts && !insertProducts {
			l.Info("No actions requested. Use --mode, --insert or --purge to change the database.")
		} else {
			l.Info("No actions required based on current flags.")
		}
		return nil
	}

	if dryRunProducts {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmDestructiveAction(cmd.OutOrStdout(), cmd.InOrStdin(), len(report.Plan.Actions)) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	l.Info("Applying actions...")
	executed, err := svc.Apply(ctx, report, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan after %d actions: %w", executed, err)
	}

	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *product.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("total", s.Total),
		zap.Int("matched", s.Matched),
		zap.Int("feed_only", s.SourceOnly),
		zap.Int("stored_only", s.DestinationOnly),
		zap.Int("conflicting", s.Conflicting),
		zap.Int("conflicts", s.Conflicts),
	)

	for _, e := range plan.Entries {
		for _, c := range e.Conflicts {
			l.Info("Conflict", zap.String("key", e.Key), zap.String("change", product.Describe(c)))
		}
	}

	if len(plan.Actions) == 0 {
		return
	}

	l.Info("Planned actions",
		zap.Int("update_actions", s.UpdateActions),
		zap.Int("insert_actions", s.InsertActions),
		zap.Int("delete_actions", s.DeleteActions),
		zap.Int("total_actions", len(plan.Actions)),
	)

	shown := min(len(plan.Actions), maxSampleActions)
	for _, action := range plan.Actions[:shown] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > shown {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-shown))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(out io.Writer, in io.Reader, actions int) bool {
	if yesConfirm {
		fmt.Fprintln(out, "\nAuto-confirmed via --yes flag")
		return true
	}

	fmt.Fprintf(out, "\nType 'yes' to confirm %d database actions: ", actions)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}

