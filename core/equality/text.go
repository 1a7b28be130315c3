package equality

import "strings"

// TextOption configures a text comparer.
type TextOption uint8

const (
	// CaseInsensitive compares using simple Unicode case folding.
	CaseInsensitive TextOption = 1 << iota
	// IgnoreWhitespace trims leading and trailing whitespace before comparing.
	IgnoreWhitespace
	// BlankMatchesAny makes an empty or whitespace-only value equal to anything.
	BlankMatchesAny
)

// TextComparer is the configurable string strategy. The zero value compares exactly.
type TextComparer struct {
	opts TextOption
}

// Text builds a text comparer from the given options.
func Text(opts ...TextOption) TextComparer {
	var c TextComparer
	for _, o := range opts {
		c.opts |= o
	}
	return c
}

// Has reports whether the option is set.
func (c TextComparer) Has(o TextOption) bool {
	return c.opts&o != 0
}

// Equal applies blank handling, trimming and case folding in that order.
func (c TextComparer) Equal(x, y string) bool {
	if c.Has(BlankMatchesAny) && (isBlank(x) || isBlank(y)) {
		return true
	}
	if c.Has(IgnoreWhitespace) {
		x = strings.TrimSpace(x)
		y = strings.TrimSpace(y)
	}
	if c.Has(CaseInsensitive) {
		return strings.EqualFold(x, y)
	}
	return x == y
}

// NullableText applies the text strategy to optional strings.
// A nil string is blank; without BlankMatchesAny it equals only nil.
func NullableText(opts ...TextOption) Comparer[*string] {
	c := Text(opts...)
	return Func[*string](func(x, y *string) bool {
		if x == nil || y == nil {
			if c.Has(BlankMatchesAny) {
				return true
			}
			return x == nil && y == nil
		}
		return c.Equal(*x, *y)
	})
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
