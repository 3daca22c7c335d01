// Package gen provides deterministic Go code generation for mask
// shapes, parsers, and appliers.
//
// Generation approach uses text/template + go/format for readable
// output. Per record type it emits:
//
//   - the mask shape struct (one slot per field)
//   - Deserialize<T>Mask, folding one field path into a mask
//   - SelectAll<T>Mask, marking every slot recursively
//   - Apply<T>Mask, the unconditional masked merge
//   - Apply<T>MaskPresence, the always-present derivation used by
//     Option slots
//
// Generated files land in the record type's own package, so mask
// structs can reference sibling mask types without import cycles.
package gen
