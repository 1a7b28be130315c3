package field

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-merger/core/equality"
)

func itemTable(t *testing.T) []Descriptor[item] {
	t.Helper()
	code, err := Define[item, string]("Code",
		func(i *item) string { return i.Code },
		func(i *item, v string) { i.Code = v },
		equality.Text(equality.CaseInsensitive))
	require.NoError(t, err)
	note, err := Define[item, *string]("Note",
		func(i *item) *string { return i.Note },
		func(i *item, v *string) { i.Note = v }, nil)
	require.NoError(t, err)
	qty, err := Define[item, int]("Qty",
		func(i *item) int { return i.Qty },
		func(i *item, v int) { i.Qty = v }, nil)
	require.NoError(t, err)
	seen, err := Define[item, time.Time]("Seen",
		func(i *item) time.Time { return i.Seen },
		func(i *item, v time.Time) { i.Seen = v }, nil)
	require.NoError(t, err)
	return []Descriptor[item]{code, note, qty, seen}
}

// TestDefine_BehavesLikeReflectedDescriptor tests copy, equality and defaults
// of function based descriptors.
func TestDefine_BehavesLikeReflectedDescriptor(t *testing.T) {
	table := itemTable(t)
	code, note, qty, seen := table[0], table[1], table[2], table[3]

	src := &item{Code: "ab-1", Note: strPtr("fragile"), Qty: 4, Seen: time.Unix(100, 0)}
	dst := &item{Code: "AB-1", Note: strPtr(" "), Seen: time.Unix(100, 0).In(time.FixedZone("X", 3600))}

	ok, c := code.Equal(src, dst)
	assert.True(t, ok)
	assert.Nil(t, c)

	ok, c = qty.Equal(src, dst)
	assert.False(t, ok)
	assert.Equal(t, &Conflict{Property: "Qty", Source: "4", Destination: "0"}, c)

	ok, _ = seen.Equal(src, dst)
	assert.True(t, ok)

	assert.True(t, note.IsDefault(dst))
	assert.True(t, qty.IsDefault(dst))
	assert.False(t, code.IsDefault(dst))
	assert.True(t, seen.IsDefault(&item{}))

	note.Copy(src, dst)
	assert.Equal(t, "fragile", *dst.Note)
}

// TestDefine_Rejects tests that Define only accepts getters and setters of the
// named field.
func TestDefine_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		define func() error
	}{
		{"empty name", func() error {
			_, err := Define[item, int]("", func(i *item) int { return i.Qty }, func(i *item, v int) { i.Qty = v }, nil)
			return err
		}},
		{"missing getter", func() error {
			_, err := Define[item, int]("Qty", nil, func(i *item, v int) { i.Qty = v }, nil)
			return err
		}},
		{"not a field", func() error {
			_, err := Define[item, string]("Sku", func(i *item) string { return i.Code }, func(i *item, v string) { i.Code = v }, nil)
			return err
		}},
		{"method", func() error {
			_, err := Define[item, string]("Describe", func(i *item) string { return i.Describe() }, func(i *item, v string) { i.Name = v }, nil)
			return err
		}},
		{"wrong type", func() error {
			_, err := Define[item, int64]("Qty", func(i *item) int64 { return int64(i.Qty) }, func(i *item, v int64) { i.Qty = int(v) }, nil)
			return err
		}},
		{"not a scalar", func() error {
			_, err := Define[item, []string]("Labels", func(i *item) []string { return i.Labels }, func(i *item, v []string) { i.Labels = v }, nil)
			return err
		}},
		{"setter writes another field", func() error {
			_, err := Define[item, string]("Code", func(i *item) string { return i.Code }, func(i *item, v string) { i.Name = v }, nil)
			return err
		}},
		{"setter writes two fields", func() error {
			_, err := Define[item, string]("Code", func(i *item) string { return i.Code }, func(i *item, v string) { i.Code, i.Name = v, v }, nil)
			return err
		}},
		{"getter reads another field", func() error {
			_, err := Define[item, string]("Code", func(i *item) string { return i.Name }, func(i *item, v string) { i.Code = v }, nil)
			return err
		}},
		{"getter returns a constant", func() error {
			_, err := Define[item, int]("Qty", func(*item) int { return 1 }, func(i *item, v int) { i.Qty = v }, nil)
			return err
		}},
		{"accessor panics", func() error {
			_, err := Define[item, *string]("Note", func(i *item) *string { return i.Note }, func(i *item, v *string) { *i.Note = *v }, nil)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.define()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAccessor))
		})
	}
}

// TestDefine_AcceptsEveryScalarKind tests that field types of all scalar kinds
// pass the accessor check.
func TestDefine_AcceptsEveryScalarKind(t *testing.T) {
	_, err := Define[item, uuid.UUID]("ID",
		func(i *item) uuid.UUID { return i.ID },
		func(i *item, v uuid.UUID) { i.ID = v }, nil)
	assert.NoError(t, err)
	_, err = Define[item, *float64]("Weight",
		func(i *item) *float64 { return i.Weight },
		func(i *item, v *float64) { i.Weight = v }, nil)
	assert.NoError(t, err)
	_, err = Define[item, bool]("Enabled",
		func(i *item) bool { return i.Enabled },
		func(i *item, v bool) { i.Enabled = v }, nil)
	assert.NoError(t, err)
	_, err = Define[item, time.Duration]("TTL",
		func(i *item) time.Duration { return i.TTL },
		func(i *item, v time.Duration) { i.TTL = v }, nil)
	assert.NoError(t, err)
	_, err = Define[invoice, decimal.Decimal]("Total",
		func(i *invoice) decimal.Decimal { return i.Total },
		func(i *invoice, v decimal.Decimal) { i.Total = v }, nil)
	assert.NoError(t, err)
	_, err = Define[invoice, *decimal.Decimal]("Tax",
		func(i *invoice) *decimal.Decimal { return i.Tax },
		func(i *invoice, v *decimal.Decimal) { i.Tax = v }, nil)
	assert.NoError(t, err)
}

type sku string

type part struct {
	SKU   sku
	Alias *sku
}

// TestDefine_IsDefaultNamedString tests that blank values of named string types
// count as default on both descriptor paths.
func TestDefine_IsDefaultNamedString(t *testing.T) {
	defined, err := Define[part, sku]("SKU",
		func(p *part) sku { return p.SKU },
		func(p *part, v sku) { p.SKU = v }, nil)
	require.NoError(t, err)
	alias, err := Define[part, *sku]("Alias",
		func(p *part) *sku { return p.Alias },
		func(p *part, v *sku) { p.Alias = v }, nil)
	require.NoError(t, err)

	blank := sku(" ")
	for _, d := range []Descriptor[part]{defined, New(MustOf[part, sku]("SKU"), nil)} {
		assert.True(t, d.IsDefault(&part{SKU: " \t"}))
		assert.False(t, d.IsDefault(&part{SKU: "A1"}))
	}
	for _, d := range []Descriptor[part]{alias, New(MustOf[part, *sku]("Alias"), nil)} {
		assert.True(t, d.IsDefault(&part{}))
		assert.True(t, d.IsDefault(&part{Alias: &blank}))
	}
}

// TestNewTable tests that tables keep their order and skip discovery.
func TestNewTable(t *testing.T) {
	r, err := NewTable(itemTable(t)...)
	require.NoError(t, err)
	assert.Equal(t, []string{"Code", "Note", "Qty", "Seen"}, r.Names())

	require.NoError(t, r.Ignore("Note"))
	assert.Equal(t, []string{"Code", "Qty", "Seen"}, r.Names())

	// the key may be ignored even when the table never listed it
	require.NoError(t, r.Ignore("ID"))
	assert.Equal(t, []string{"Code", "Qty", "Seen"}, r.Names())

	exact, err := Define[item, string]("Code",
		func(i *item) string { return i.Code },
		func(i *item, v string) { i.Code = v }, nil)
	require.NoError(t, err)
	r.Override(exact)
	ok, _ := r.Active()[0].Equal(&item{Code: "a"}, &item{Code: "A"})
	assert.False(t, ok)
}

// TestNewTable_Rejects tests that duplicate and nil entries are refused.
func TestNewTable_Rejects(t *testing.T) {
	table := itemTable(t)

	_, err := NewTable(table[0], table[1], table[0])
	assert.True(t, errors.Is(err, ErrInvalidAccessor))

	_, err = NewTable(table[0], nil)
	assert.True(t, errors.Is(err, ErrInvalidAccessor))
}
