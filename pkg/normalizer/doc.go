// Package normalizer provides the text transforms applied to business
// contact records.
//
// All transforms are pure functions of their input: they hold no mutable
// state, never fail on valid text, and handle malformed input by degrading
// gracefully (empty output, or absent address fields) rather than returning
// errors. A single instance of each transform can be shared across
// concurrent requests.
//
// Transforms include:
//   - Company names: strip punctuation and legal-entity suffixes (LLC, Inc, ...)
//   - Emails: extract every email-shaped substring from free text, in order
//   - Addresses: split "Street, City, STATE ZIP" strings into components
//   - Rows: compose the three transforms over whole records, with per-row
//     failure isolation for bulk input
package normalizer
