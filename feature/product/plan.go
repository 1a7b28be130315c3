package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"record-merger/core/field"
	"record-merger/core/reconcile"
)

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionUpdateDB writes a merged product back to the database.
	ActionUpdateDB ActionType = "update_db"
	// ActionInsertDB inserts a product that only exists in the feed.
	ActionInsertDB ActionType = "insert_db"
	// ActionDeleteDB deletes a product that no longer exists in the feed.
	ActionDeleteDB ActionType = "delete_db"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type" yaml:"type"`

	// Key identifies the product (SKU, else ID).
	Key string `json:"key" yaml:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason" yaml:"reason"`

	// Product is the record to write or delete.
	Product *Product `json:"-" yaml:"-"`
}

// Options controls which actions are planned and whether they run.
type Options struct {
	// Mode selects compare, merge-missing or merge.
	Mode reconcile.Mode

	// DoPurge plans deletion of stored products missing from the feed.
	DoPurge bool

	// DoInsert plans insertion of feed products missing from the database.
	DoInsert bool

	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the caller has confirmed the mutations.
	// If false, nothing executes regardless of DryRun.
	Confirmed bool
}

// PlanSummary adds action counts to the reconcile summary.
type PlanSummary struct {
	reconcile.Summary `yaml:",inline"`

	// UpdateActions counts planned database updates.
	UpdateActions int `json:"update_actions" yaml:"update_actions"`

	// InsertActions counts planned inserts.
	InsertActions int `json:"insert_actions" yaml:"insert_actions"`

	// DeleteActions counts planned deletes.
	DeleteActions int `json:"delete_actions" yaml:"delete_actions"`
}

// Status of a product in the report.
const (
	StatusMatched    = "matched"
	StatusFeedOnly   = "feed_only"
	StatusStoredOnly = "stored_only"
)

// Entry is the report view of one CompareResult.
type Entry struct {
	Status    string           `json:"status" yaml:"status"`
	Key       string           `json:"key" yaml:"key"`
	Name      string           `json:"name" yaml:"name"`
	Score     int              `json:"score" yaml:"score"`
	Conflicts []field.Conflict `json:"conflicts" yaml:"conflicts"`
}

// Plan contains reconciliation results and planned actions.
type Plan struct {
	Entries []Entry     `json:"entries" yaml:"entries"`
	Actions []Action    `json:"actions" yaml:"actions"`
	Summary PlanSummary `json:"summary" yaml:"summary"`
}

// BuildPlan turns results into report entries and actions. changed reports
// whether a stored product was modified by the merge step.
func BuildPlan(results []reconcile.CompareResult[Product], changed func(*Product) bool, opts Options) *Plan {
	plan := &Plan{
		Entries: make([]Entry, 0, len(results)),
		Actions: []Action{},
		Summary: PlanSummary{Summary: reconcile.Summarize(results)},
	}

	for _, r := range results {
		entry := Entry{
			Key:       r.Instance.Label(),
			Name:      r.Instance.Name,
			Score:     r.Score,
			Conflicts: r.Conflicts,
		}

		switch {
		case r.Matched():
			entry.Status = StatusMatched
			if opts.Mode.Merges() && changed != nil && changed(r.Destination) {
				plan.Actions = append(plan.Actions, Action{
					Type:    ActionUpdateDB,
					Key:     entry.Key,
					Reason:  fmt.Sprintf("%s from feed", opts.Mode),
					Product: r.Destination,
				})
				plan.Summary.UpdateActions++
			}

		case r.SourceOnly():
			entry.Status = StatusFeedOnly
			if opts.DoInsert {
				plan.Actions = append(plan.Actions, Action{
					Type:    ActionInsertDB,
					Key:     entry.Key,
					Reason:  "missing in database",
					Product: r.Source,
				})
				plan.Summary.InsertActions++
			}

		case r.DestinationOnly():
			entry.Status = StatusStoredOnly
			if opts.DoPurge {
				plan.Actions = append(plan.Actions, Action{
					Type:    ActionDeleteDB,
					Key:     entry.Key,
					Reason:  "missing in feed",
					Product: r.Destination,
				})
				plan.Summary.DeleteActions++
			}
		}

		plan.Entries = append(plan.Entries, entry)
	}

	return plan
}

// ApplyPlan executes the actions in a plan, grouped by type.
// Returns the number of actions executed. Requires opts.Confirmed and not
// opts.DryRun to actually execute.
func ApplyPlan(ctx context.Context, repo *Repository, plan *Plan, opts Options) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	var (
		updates   []*Product
		inserts   []*Product
		deleteIDs []uuid.UUID
	)
	for _, a := range plan.Actions {
		switch a.Type {
		case ActionUpdateDB:
			updates = append(updates, a.Product)
		case ActionInsertDB:
			inserts = append(inserts, a.Product)
		case ActionDeleteDB:
			deleteIDs = append(deleteIDs, a.Product.ID)
		}
	}

	if len(updates) > 0 {
		if err := repo.SaveAll(ctx, updates); err != nil {
			return executed, err
		}
		executed += len(updates)
	}

	if len(inserts) > 0 {
		if err := repo.Create(ctx, inserts); err != nil {
			return executed, err
		}
		executed += len(inserts)
	}

	if len(deleteIDs) > 0 {
		if _, err := repo.DeleteByIDs(ctx, deleteIDs); err != nil {
			return executed, err
		}
		executed += len(deleteIDs)
	}

	return executed, nil
}

// Describe renders a conflict the way operators read it: what the database
// value would change to.
func Describe(c field.Conflict) string {
	return fmt.Sprintf("changing %s from %q to %q", c.Property, c.Destination, c.Source)
}
