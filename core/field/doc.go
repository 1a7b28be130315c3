// Package field describes the scalar fields of a record type and implements the
// per-field operations the diff engine is built on: copy, soft equality and the
// "is default" check.
//
// # Accessors
//
// Fields are addressed through validated handles rather than arbitrary closures.
// Of checks once, at registration time, that a name denotes a direct exported scalar
// field of the struct and that its type matches:
//
//	sku, err := field.Of[Product, string]("SKU")
//
// Anything else (unknown names, dotted paths, methods, promoted or unexported fields,
// composite types) fails with a *ConfigError wrapping ErrInvalidAccessor.
//
// # Registry
//
// A Registry discovers every scalar field of the record type on first use, exactly
// once, and layers explicit overrides and ignores on top. Configure it fully before
// the first call to Active; afterwards treat it as read-only.
//
// # Tables
//
// NewTable builds a registry from descriptors made with Define instead of
// reflection. Each entry names its field and supplies a getter and a setter:
//
//	sku, err := field.Define("SKU",
//		func(p *Product) string { return p.SKU },
//		func(p *Product, v string) { p.SKU = v }, nil)
package field
