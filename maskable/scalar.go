package maskable

// The two scalar terminals. Their mask shape is a single bool: replace
// the field wholesale or leave it untouched. Any additional scalar
// terminal follows the same two-function template.

// DeserializeUint32Mask folds a field path into a uint32 terminal's
// mask. An empty path selects the value; any remaining segment is a
// mismatch, since terminals never recurse.
func DeserializeUint32Mask(mask *bool, segs []string) error {
	return deserializeScalarMask("uint32", mask, segs)
}

// ApplyUint32Mask overwrites dst with src when mask is set.
func ApplyUint32Mask(dst *uint32, src uint32, mask bool) {
	if mask {
		*dst = src
	}
}

// DeserializeTextMask folds a field path into a string terminal's mask.
func DeserializeTextMask(mask *bool, segs []string) error {
	return deserializeScalarMask("string", mask, segs)
}

// ApplyTextMask overwrites dst with src when mask is set.
func ApplyTextMask(dst *string, src string, mask bool) {
	if mask {
		*dst = src
	}
}

// Presence variants for scalar terminals inside Option slots.
var (
	ApplyUint32MaskPresence = AlwaysPresent(ApplyUint32Mask)
	ApplyTextMaskPresence   = AlwaysPresent(ApplyTextMask)
)

func deserializeScalarMask(typeName string, mask *bool, segs []string) error {
	if len(segs) == 0 {
		*mask = true
		return nil
	}
	return &DeserializeMaskError{Type: typeName, Field: segs[0]}
}
