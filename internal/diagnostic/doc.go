// Package diagnostic provides structured warnings, errors, and
// explanations for the mask generator.
//
// Key capabilities:
//   - Unknown or non-struct manifest type errors
//   - Unsupported field type errors with the offending field path
//   - Recursive mask shape errors
//   - "Did you mean" suggestions for near-miss names
package diagnostic
