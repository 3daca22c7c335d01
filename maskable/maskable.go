package maskable

import (
	"errors"
	"fmt"
)

// DeserializeMaskError reports a field path segment that does not exist
// at the current type at the current nesting depth. It is the only error
// the parsing surface produces; mask application is total and never
// fails.
type DeserializeMaskError struct {
	// Type is the name of the type being parsed when the mismatch was
	// detected (e.g. "uint32", "User").
	Type string
	// Field is the offending path segment.
	Field string
	// Depth is the number of record layers descended through below the
	// outermost parser frame when the mismatch was detected. Terminals
	// report 0 from their own frame; each record layer increments it on
	// propagation (see BumpDepth).
	Depth int
}

func (e *DeserializeMaskError) Error() string {
	return fmt.Sprintf("there's no %q in %s", e.Field, e.Type)
}

// MaskParser folds one field path, pre-split into segments, into mask.
// An empty segment list selects the whole value. Implementations only
// ever set slots, never clear them, so several independent paths can be
// folded into the same mask value.
type MaskParser[M any] func(mask *M, segs []string) error

// Applier merges mask-selected fields of src into dst. The merge is
// unconditional: it always yields a valid destination. Moved source
// fields are consumed by the destination.
type Applier[T, M any] func(dst *T, src T, mask M)

// PresenceApplier merges like an Applier and reports whether the merged
// destination should be treated as present by an enclosing Option. A
// false verdict makes the enclosing Option collapse to absent.
type PresenceApplier[T, M any] func(dst *T, src T, mask M) bool

// AlwaysPresent derives a PresenceApplier from an Applier: the merge runs
// unconditionally and the result is always reported present. This models
// a substructure that, once populated, never decides to disappear on its
// own — only an enclosing Option can discard it.
func AlwaysPresent[T, M any](apply Applier[T, M]) PresenceApplier[T, M] {
	return func(dst *T, src T, mask M) bool {
		apply(dst, src, mask)
		return true
	}
}

// BumpDepth increments the Depth of a DeserializeMaskError propagating
// out of one record layer and returns the error unchanged otherwise.
// Generated record parsers call it when a nested field parse fails, so
// the error's depth ends up counting the record layers between the
// caller and the frame that detected the mismatch.
func BumpDepth(err error) error {
	var dErr *DeserializeMaskError
	if errors.As(err, &dErr) {
		dErr.Depth++
	}
	return err
}

// Build folds several pre-split field paths into a fresh mask value,
// starting from the shape's zero value. On error the mask accumulated
// from the paths before the failing one is returned along with the
// error; earlier contributions are never corrupted by a later failure.
func Build[M any](parse MaskParser[M], paths ...[]string) (M, error) {
	var mask M
	for _, segs := range paths {
		if err := parse(&mask, segs); err != nil {
			return mask, err
		}
	}
	return mask, nil
}
