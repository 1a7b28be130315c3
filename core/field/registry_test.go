package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"record-merger/core/equality"
)

// TestRegistryDiscoversScalarsInDeclarationOrder tests that discovery keeps declaration order and skips composites.
func TestRegistryDiscoversScalarsInDeclarationOrder(t *testing.T) {
	r, err := NewRegistry[item]()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"ID", "Code", "Name", "Note", "Qty", "Weight", "Enabled", "TTL", "Seen"},
		r.Names())
}

// TestRegistryRejectsNonStruct tests that registries require a struct type.
func TestRegistryRejectsNonStruct(t *testing.T) {
	_, err := NewRegistry[int]()
	assert.ErrorIs(t, err, ErrInvalidAccessor)
}

// TestRegistryIgnore tests that ignored fields drop out of the active set.
func TestRegistryIgnore(t *testing.T) {
	r, err := NewRegistry[item]()
	require.NoError(t, err)

	require.NoError(t, r.Ignore("Seen"))
	require.NoError(t, r.Ignore("Labels"))
	assert.True(t, r.Ignored("Seen"))
	assert.NotContains(t, r.Names(), "Seen")

	assert.ErrorIs(t, r.Ignore("Nope"), ErrInvalidAccessor)
}

// TestRegistryOverrideLastWins tests that the latest override replaces earlier ones in place.
func TestRegistryOverrideLastWins(t *testing.T) {
	r, err := NewRegistry[item]()
	require.NoError(t, err)

	code := MustOf[item, string]("Code")
	r.Override(New[item, string](code, equality.Text(equality.CaseInsensitive)))
	r.Override(New[item, string](code, equality.Default[string]()))

	names := r.Names()
	assert.Equal(t, "Code", names[1], "override keeps declaration position")
	assert.Len(t, names, 9)

	var d Descriptor[item]
	for _, a := range r.Active() {
		if a.Name() == "Code" {
			d = a
		}
	}
	ok, _ := d.Equal(&item{Code: "a"}, &item{Code: "A"})
	assert.False(t, ok)
}

// TestRegistryOverrideOfIgnoredFieldStaysIgnored tests that ignoring wins over overriding.
func TestRegistryOverrideOfIgnoredFieldStaysIgnored(t *testing.T) {
	r, err := NewRegistry[item]()
	require.NoError(t, err)

	require.NoError(t, r.Ignore("Name"))
	r.Override(New(MustOf[item, string]("Name"), nil))

	assert.NotContains(t, r.Names(), "Name")
}

// TestRegistryProviderAppliesToDiscovery tests that discovered fields use the configured provider.
func TestRegistryProviderAppliesToDiscovery(t *testing.T) {
	r, err := NewRegistry[item]()
	require.NoError(t, err)

	p := equality.NewTypeProvider(nil)
	equality.Register[string](p, equality.Text(equality.CaseInsensitive))
	r.SetProvider(p)

	var conflicts []string
	for _, d := range r.Active() {
		if ok, c := d.Equal(&item{Code: "x", Name: "Y"}, &item{Code: "X", Name: "y"}); !ok {
			conflicts = append(conflicts, c.Property)
		}
	}
	assert.Empty(t, conflicts)
}

// TestRegistryDiscoveryRunsOnce tests that repeated Active calls return the same descriptors.
func TestRegistryDiscoveryRunsOnce(t *testing.T) {
	r, err := NewRegistry[item]()
	require.NoError(t, err)

	first := r.Active()
	second := r.Active()
	require.Len(t, second, len(first))
	for i := range first {
		assert.Same(t, first[i], second[i])
	}
}

// TestRegistryDiscoveryConcurrentFirstUse tests that goroutines racing on the
// first Active call share a single discovery.
func TestRegistryDiscoveryConcurrentFirstUse(t *testing.T) {
	r, err := NewRegistry[item]()
	require.NoError(t, err)

	const workers = 16
	results := make([][]Descriptor[item], workers)
	start := make(chan struct{})
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			<-start
			results[i] = r.Active()
			return nil
		})
	}
	close(start)
	require.NoError(t, g.Wait())

	require.NotEmpty(t, results[0])
	for i := 1; i < workers; i++ {
		require.Len(t, results[i], len(results[0]))
		for j := range results[0] {
			assert.Same(t, results[0][j], results[i][j])
		}
	}
}
