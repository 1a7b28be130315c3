package equality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestText tests the text comparison options.
func TestText(t *testing.T) {
	tests := []struct {
		name string
		opts []TextOption
		x, y string
		want bool
	}{
		{"ExactMatch", nil, "foo", "foo", true},
		{"ExactIsCaseSensitive", nil, "FOO", "foo", false},
		{"ExactIsWhitespaceSensitive", nil, "foo", " foo ", false},
		{"ExactBlankIsNotWildcard", nil, "", "foo", false},
		{"CaseInsensitive", []TextOption{CaseInsensitive}, "FOO", "foo", true},
		{"CaseInsensitiveStillComparesText", []TextOption{CaseInsensitive}, "foo", "bar", false},
		{"CaseInsensitiveKeepsWhitespace", []TextOption{CaseInsensitive}, "foo", " foo", false},
		{"IgnoreWhitespace", []TextOption{IgnoreWhitespace}, "foo", " foo ", true},
		{"IgnoreWhitespaceKeepsCase", []TextOption{IgnoreWhitespace}, "FOO", " foo ", false},
		{"Combined", []TextOption{IgnoreWhitespace, CaseInsensitive}, "\tFOO", "foo  ", true},
		{"BlankMatchesAny", []TextOption{BlankMatchesAny}, "", "anything", true},
		{"WhitespaceIsBlank", []TextOption{BlankMatchesAny}, "   ", "anything", true},
		{"BlankBothSides", []TextOption{BlankMatchesAny}, "", "", true},
		{"BlankMatchesAnyStillCompares", []TextOption{BlankMatchesAny}, "foo", "bar", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Text(tt.opts...)
			assert.Equal(t, tt.want, c.Equal(tt.x, tt.y))
			assert.Equal(t, tt.want, c.Equal(tt.y, tt.x), "text equality is symmetric")
		})
	}
}

// TestTextHas tests option lookup on a text comparer.
func TestTextHas(t *testing.T) {
	c := Text(CaseInsensitive, BlankMatchesAny)
	assert.True(t, c.Has(CaseInsensitive))
	assert.True(t, c.Has(BlankMatchesAny))
	assert.False(t, c.Has(IgnoreWhitespace))
}

// TestNullableText tests nullable text with blank wildcards.
func TestNullableText(t *testing.T) {
	exact := NullableText()
	assert.True(t, exact.Equal(nil, nil))
	assert.False(t, exact.Equal(nil, ptr("anything")))
	assert.False(t, exact.Equal(ptr("FOO"), ptr("foo")))

	wildcard := NullableText(BlankMatchesAny)
	assert.True(t, wildcard.Equal(nil, ptr("anything")))
	assert.True(t, wildcard.Equal(nil, nil))
	assert.True(t, wildcard.Equal(ptr(" "), ptr("anything")))

	folded := NullableText(CaseInsensitive)
	assert.True(t, folded.Equal(ptr("FOO"), ptr("foo")))
}
