// Package utils provides small conversion helpers shared across the module:
// rendering scalar values as text for conflict reports, and lenient boolean parsing
// for query parameters and flags.
package utils
