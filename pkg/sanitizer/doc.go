// Package sanitizer normalizes booking input before validation and storage.
//
// All functions are idempotent: applying them twice gives the same result as
// applying them once. Bad input never produces an error here; it collapses to
// empty strings or empty slices and validation decides what to do with it.
//
// Normalization includes:
//   - Strings: collapse runs of whitespace, trim leading/trailing spaces
//   - Rooms: trim only, so they compare equal to stored rooms
//   - Participant lists: split on ';', trim each token, drop empty tokens
//   - Cell values: trim and drop blanks while keeping order
package sanitizer
