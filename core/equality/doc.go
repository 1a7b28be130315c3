// Package equality provides the pluggable "are these two values the same" strategies
// used by both record matching and field-level diffing.
//
// A Comparer decides soft equality for one value type. The package ships:
//   - Default: native == equality for comparable types.
//   - Nullable: == on the pointed-to values, nil only equals nil.
//   - NullAware: nil on either side acts as a wildcard.
//   - Text / NullableText: configurable case, whitespace and blank handling.
//   - Time: instant equality that ignores location and monotonic readings.
//
// # Providers
//
// Fields discovered by reflection have no static type at registration time, so they
// obtain their comparer from a Provider keyed by reflect.Type. DefaultProvider covers
// every scalar type; NewTypeProvider layers per-type overrides on top of it:
//
//	p := equality.NewTypeProvider(nil)
//	equality.Register[string](p, equality.Text(equality.CaseInsensitive))
package equality
