// Package suggest ranks near-miss identifier candidates for "did you
// mean" diagnostics, using Levenshtein distance over normalized names
// (case-folded, CamelCase-tokenized, separator-stripped).
package suggest
