// Package maskable is the runtime for statically-typed field masks.
//
// A field mask selects which fields of a record participate in a merge.
// Masks are typed: each maskable type has a mask shape — a bool for a
// scalar terminal, a generated struct with one slot per field for a
// record, and the inner type's shape unchanged for an Option (optionality
// adds no mask dimension).
//
// # Contracts
//
// Three function-typed contracts tie the runtime and generated code
// together:
//
//   - MaskParser folds one pre-split field path into a mask value.
//     Parsing is additive: repeated calls against the same mask only ever
//     set more slots.
//   - Applier merges mask-selected fields of a source value into a
//     destination value unconditionally.
//   - PresenceApplier does the same and additionally reports whether the
//     merged destination should be treated as present by an enclosing
//     Option. AlwaysPresent derives one from an Applier.
//
// The package provides the two scalar terminals (uint32 and string) and
// the Option wrapper. Record implementations are generated by maskgen;
// see the repository's cmd/maskgen and examples directories.
//
// # Presence collapse
//
// ApplyOptionMask implements the four-way presence table that lets a
// deeply nested optional structure revert to absent when a masked merge
// leaves it without meaningful content. Each Option layer only consumes
// the boolean verdict of the layer directly inside it, so emptiness
// propagates outward through arbitrary nesting without any layer knowing
// what lies below.
package maskable
