// Package textutil provides text helpers for naming gallery sections.
//
// The primary use cases are:
//   - Deriving stable slugs from directory names for use as HTML fragment
//     identifiers
//   - Deriving human-readable titles from directory names
//   - Natural (numeric-aware, case-insensitive) ordering of file and
//     directory names
package textutil
