package cmd

import (
	"fmt"

	"record-merger/core/reconcile"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// demoRecord is the record type used by the demo command.
type demoRecord struct {
	ID        uuid.UUID
	Property1 string
	Property2 int
}

var demoMode string

// demoCmd shows a user edit being compared against the stored record.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Compare an edited record against its stored version",
	Long: `Builds two in-memory records sharing the same key, one as stored and one as
edited by a user, matches them on the key and prints every changed field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := reconcile.ParseMode(demoMode)
		if err != nil {
			return err
		}
		return runDemo(cmd, mode)
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoMode, "mode", string(reconcile.ModeCompare), fmt.Sprintf("Reconcile mode %v", reconcile.Modes))
	RootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, mode reconcile.Mode) error {
	key := uuid.New()
	stored := &demoRecord{ID: key, Property1: "foo", Property2: 1}
	edited := &demoRecord{ID: key, Property1: "bar", Property2: 1}

	e, err := reconcile.New[demoRecord]("ID", false)
	if err != nil {
		return err
	}
	if err := reconcile.AddEvaluator[demoRecord, uuid.UUID](e, 100, "ID", nil); err != nil {
		return err
	}

	results, err := e.Run(mode, []*demoRecord{edited}, []*demoRecord{stored})
	if err != nil {
		return err
	}
	if len(results) != 1 || !results[0].Matched() {
		return fmt.Errorf("expected one matched pair, got %d results", len(results))
	}

	out := cmd.OutOrStdout()
	conflicts := results[0].Conflicts
	if mode.Merges() {
		fmt.Fprintf(out, "Stored record after %s: %+v\n", mode, *stored)
	}
	if len(conflicts) == 0 {
		fmt.Fprintln(out, "No changes")
		return nil
	}
	for _, c := range conflicts {
		// destination holds the stored value
		fmt.Fprintf(out, "User changing %s from %s to %s\n", c.Property, c.Destination, c.Source)
	}
	return nil
}
