package plan

import (
	"github.com/titanous/fieldmask/internal/analyze"
	"github.com/titanous/fieldmask/internal/common"
	"github.com/titanous/fieldmask/internal/diagnostic"
)

// MaskPlan is the final output of the planning pipeline. It contains
// everything needed for code generation.
type MaskPlan struct {
	// Types is the list of resolved mask types, dependency-first.
	Types []MaskType
	// TypeGraph holds all analyzed types and packages to allow looking
	// up package names.
	TypeGraph *analyze.TypeGraph
	// Diagnostics contains all warnings and errors from planning.
	Diagnostics diagnostic.Diagnostics
}

// MaskType represents one record type with its resolved mask slots.
type MaskType struct {
	// Type is the record type getting a mask shape.
	Type *analyze.TypeInfo
	// Slots is the list of mask slots, in struct field order.
	Slots []MaskSlot
	// Implicit is true when the type was pulled into the plan as a
	// dependency of a listed type rather than listed itself.
	Implicit bool
}

// SlotKind represents what a mask slot selects.
type SlotKind int

const (
	SlotUnknown SlotKind = iota
	SlotScalar           // a scalar terminal; the slot is a bool flag
	SlotRecord           // a nested record; the slot is that record's mask shape
)

// String returns a human-readable representation of the SlotKind.
func (k SlotKind) String() string {
	switch k {
	case SlotScalar:
		return "scalar"
	case SlotRecord:
		return "record"
	default:
		return common.UnknownStr
	}
}

// ScalarKind identifies which scalar terminal a flag slot uses.
type ScalarKind int

const (
	ScalarNone ScalarKind = iota
	ScalarUint32
	ScalarText
)

// String returns a human-readable representation of the ScalarKind.
func (k ScalarKind) String() string {
	switch k {
	case ScalarUint32:
		return "uint32"
	case ScalarText:
		return "string"
	default:
		return common.UnknownStr
	}
}

// MaskSlot describes one field's slot in a mask shape.
type MaskSlot struct {
	// FieldName is the Go field name on the record type.
	FieldName string
	// Segment is the field-path segment addressing this slot.
	Segment string
	// Kind determines the slot's mask shape: bool flag or nested mask.
	Kind SlotKind
	// Scalar identifies the terminal for SlotScalar slots.
	Scalar ScalarKind
	// Record is the nested record type for SlotRecord slots.
	Record *analyze.TypeInfo
	// OptionDepth counts the maskable.Option layers wrapping the field.
	// Option layers add no mask dimension; they only change how the
	// applier merges the field.
	OptionDepth int
}
