package product

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"record-merger/core/equality"
	"record-merger/core/field"
	"record-merger/core/match"
	"record-merger/core/reconcile"
)

// Evaluator weights. A shared ID outranks any SKU agreement, which in turn
// outranks a name match.
const (
	WeightID   = 1000
	WeightSKU  = 100
	WeightName = 10
)

// knownID matches identical IDs, except that unassigned IDs never match.
var knownID = equality.Func[uuid.UUID](func(x, y uuid.UUID) bool {
	return x != uuid.Nil && x == y
})

var (
	skuText  = equality.Text(equality.CaseInsensitive, equality.IgnoreWhitespace)
	nameText = equality.Text(equality.CaseInsensitive)
)

// descriptors is the diff table of Product in report order. ID and UpdatedAt
// are deliberately absent: the database owns them.
func descriptors() ([]field.Descriptor[Product], error) {
	var (
		table []field.Descriptor[Product]
		errs  []error
	)
	add := func(d field.Descriptor[Product], err error) {
		if err != nil {
			errs = append(errs, err)
			return
		}
		table = append(table, d)
	}

	add(field.Define[Product, string]("SKU",
		func(p *Product) string { return p.SKU },
		func(p *Product, v string) { p.SKU = v }, skuText))
	add(field.Define[Product, string]("Name",
		func(p *Product) string { return p.Name },
		func(p *Product, v string) { p.Name = v }, nameText))
	// a missing description on either side is not a conflict
	add(field.Define[Product, *string]("Description",
		func(p *Product) *string { return p.Description },
		func(p *Product, v *string) { p.Description = v },
		equality.NullableText(equality.BlankMatchesAny)))
	add(field.Define[Product, int64]("PriceCents",
		func(p *Product) int64 { return p.PriceCents },
		func(p *Product, v int64) { p.PriceCents = v }, nil))
	add(field.Define[Product, int]("Stock",
		func(p *Product) int { return p.Stock },
		func(p *Product, v int) { p.Stock = v }, nil))
	add(field.Define[Product, bool]("Active",
		func(p *Product) bool { return p.Active },
		func(p *Product, v bool) { p.Active = v }, nil))
	add(field.Define[Product, time.Duration]("LeadTime",
		func(p *Product) time.Duration { return p.LeadTime },
		func(p *Product, v time.Duration) { p.LeadTime = v }, nil))

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return table, nil
}

// NewEngine builds the product reconcile engine.
//
// Matching: ID (exact, never on unassigned IDs), SKU (case-insensitive,
// trimmed), Name (case-insensitive). Diff: SKU and Name compare like they
// match; ID and UpdatedAt are not compared.
func NewEngine(workers int, logger *zap.Logger) (*reconcile.Engine[Product], error) {
	table, err := descriptors()
	if err != nil {
		return nil, fmt.Errorf("failed to configure product engine: %w", err)
	}
	registry, err := field.NewTable(table...)
	if err != nil {
		return nil, fmt.Errorf("failed to configure product engine: %w", err)
	}

	e, err := reconcile.NewWithRegistry("ID", true, registry,
		reconcile.WithWorkers(workers),
		reconcile.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	scorer := e.Match()
	if err := errors.Join(
		match.Add[Product, uuid.UUID](scorer, WeightID, func(p *Product) uuid.UUID { return p.ID }, knownID),
		match.Add[Product, string](scorer, WeightSKU, func(p *Product) string { return p.SKU }, skuText),
		match.Add[Product, string](scorer, WeightName, func(p *Product) string { return p.Name }, nameText),
	); err != nil {
		return nil, fmt.Errorf("failed to configure product engine: %w", err)
	}
	return e, nil
}
