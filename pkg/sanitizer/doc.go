// Package sanitizer provides input normalization for catalog and booking data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// typically by returning empty strings or empty slices rather than errors.
//
// Normalization includes:
//   - Free text (titles, names, locations): collapse whitespace, trim
//   - Tags and categories: lowercase, strip non-letter characters
//   - Slices: remove duplicates and empty values after normalization
package sanitizer
