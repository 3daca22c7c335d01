package maskable

// Option is an optional slot for a maskable value: either present with an
// inner value or absent. No other state exists. Presence is recomputed on
// every masked merge from the (destination, source, mask) triple; it is
// never accumulated across merges.
//
// An Option shares the mask shape of its inner type, so wrapping a field
// in Option changes nothing about how paths address it.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Present reports whether the Option holds a value.
func (o Option[T]) Present() bool {
	return o.present
}

// Get returns the inner value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Value returns the inner value, or the zero value when absent.
func (o Option[T]) Value() T {
	return o.value
}

// DeserializeOptionMask folds a field path into an Option's mask by
// delegating to the inner type's parser. An optional layer consumes zero
// path segments.
func DeserializeOptionMask[M any](parse MaskParser[M], mask *M, segs []string) error {
	return parse(mask, segs)
}

// ApplyOptionMaskPresence derives an Option's own presence-reporting
// applier from its inner one: the four-way merge runs and the result is
// always reported present, mirroring AlwaysPresent. An enclosing Option
// therefore never collapses just because a nested Option did; it only
// collapses on an explicit absent source or a false verdict of its own
// inner type.
func ApplyOptionMaskPresence[T any, M comparable](apply PresenceApplier[T, M]) PresenceApplier[Option[T], M] {
	return func(dst *Option[T], src Option[T], mask M) bool {
		ApplyOptionMask(dst, src, mask, apply)
		return true
	}
}

// ApplyOptionMask merges src into dst under mask, using apply as the
// inner type's presence-reporting applier.
//
// A mask equal to its shape's zero value selects nothing and leaves dst
// untouched regardless of presence on either side. Otherwise:
//
//   - dst present, src present: merge into dst's inner value; a false
//     verdict collapses dst to absent.
//   - dst present, src absent: dst becomes absent. An explicit absent
//     source under a non-trivial mask is an explicit clear.
//   - dst absent, src present: merge into a fresh zero inner value; dst
//     becomes present only on a true verdict. A merge that produces
//     nothing from scratch must not fabricate presence.
//   - dst absent, src absent: no change.
func ApplyOptionMask[T any, M comparable](dst *Option[T], src Option[T], mask M, apply PresenceApplier[T, M]) {
	var zero M
	if mask == zero {
		return
	}
	switch {
	case dst.present && src.present:
		if !apply(&dst.value, src.value, mask) {
			*dst = Option[T]{}
		}
	case dst.present:
		*dst = Option[T]{}
	case src.present:
		var fresh T
		if apply(&fresh, src.value, mask) {
			*dst = Option[T]{value: fresh, present: true}
		}
	}
}
