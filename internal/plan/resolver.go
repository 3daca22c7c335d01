package plan

import (
	"fmt"
	"sort"

	"github.com/titanous/fieldmask/internal/analyze"
	"github.com/titanous/fieldmask/internal/diagnostic"
	"github.com/titanous/fieldmask/internal/manifest"
)

// Resolver performs the planning pipeline.
type Resolver struct {
	graph *analyze.TypeGraph
	man   *manifest.Manifest
	diags diagnostic.Diagnostics

	// resolved caches finished mask types; visiting marks types on the
	// current resolution path to detect recursive shapes.
	resolved map[analyze.TypeID]*MaskType
	visiting map[analyze.TypeID]bool
}

// NewResolver creates a new Resolver.
func NewResolver(graph *analyze.TypeGraph, man *manifest.Manifest) *Resolver {
	return &Resolver{
		graph:    graph,
		man:      man,
		resolved: make(map[analyze.TypeID]*MaskType),
		visiting: make(map[analyze.TypeID]bool),
	}
}

// Resolve runs the full planning pipeline and returns a MaskPlan. The
// plan is returned even when diagnostics contain errors, so callers can
// report everything at once.
func (r *Resolver) Resolve() (*MaskPlan, error) {
	if res := manifest.Validate(r.man, r.graph); res != nil {
		r.diags.Merge(*res)
	}

	for i := range r.man.Masks {
		def := &r.man.Masks[i]

		info := manifest.ResolveTypeID(def.Type, r.graph)
		if info == nil || info.Kind != analyze.TypeKindStruct {
			continue // already diagnosed by validation
		}

		r.resolveType(info, def, false)
	}

	ordered, err := r.orderTypes()
	if err != nil {
		return nil, fmt.Errorf("ordering mask types: %w", err)
	}

	return &MaskPlan{
		Types:       ordered,
		TypeGraph:   r.graph,
		Diagnostics: r.diags,
	}, nil
}

// resolveType resolves one record type into a MaskType, pulling nested
// record types into the plan as it goes.
func (r *Resolver) resolveType(info *analyze.TypeInfo, def *manifest.MaskDef, implicit bool) *MaskType {
	if mt, ok := r.resolved[info.ID]; ok {
		// A type listed in the manifest after being pulled in
		// implicitly is promoted to explicit.
		if !implicit {
			mt.Implicit = false
		}

		return mt
	}

	if r.visiting[info.ID] {
		r.diags.AddError("recursive_type",
			fmt.Sprintf("type %s is recursive; its mask shape would be infinite", info.ID),
			info.ID.Name, "")

		return nil
	}

	r.visiting[info.ID] = true
	defer delete(r.visiting, info.ID)

	mt := &MaskType{
		Type:     info,
		Implicit: implicit,
	}

	ignored := map[string]struct{}{}
	if def != nil {
		for _, f := range def.Ignore {
			ignored[f] = struct{}{}
		}
	}

	segments := map[string]string{}

	for i := range info.Fields {
		field := &info.Fields[i]

		if _, ok := ignored[field.Name]; ok {
			continue
		}

		if field.Embedded {
			r.diags.AddError("embedded_field",
				fmt.Sprintf("embedded field %s is not supported", field.Name),
				info.ID.Name, field.Name)

			continue
		}

		slot, ok := r.resolveSlot(info, field)
		if !ok {
			continue
		}

		if def != nil {
			if seg, ok := def.Rename[field.Name]; ok {
				slot.Segment = seg
			}
		}

		if other, ok := segments[slot.Segment]; ok {
			r.diags.AddError("segment_collision",
				fmt.Sprintf("path segment %q addresses both %q and %q", slot.Segment, other, field.Name),
				info.ID.Name, field.Name)

			continue
		}

		segments[slot.Segment] = field.Name

		mt.Slots = append(mt.Slots, slot)
	}

	r.resolved[info.ID] = mt

	return mt
}

// resolveSlot classifies one field into a mask slot.
func (r *Resolver) resolveSlot(owner *analyze.TypeInfo, field *analyze.FieldInfo) (MaskSlot, bool) {
	slot := MaskSlot{
		FieldName: field.Name,
		Segment:   field.MaskSegment(),
	}

	ft := field.Type

	// Unwrap Option layers; they share the inner type's mask shape.
	for ft != nil && ft.Kind == analyze.TypeKindOption {
		slot.OptionDepth++
		ft = ft.ElemType
	}

	if ft == nil {
		r.unsupported(owner, field, "unresolved Option element type")
		return MaskSlot{}, false
	}

	switch ft.Kind {
	case analyze.TypeKindBasic:
		switch scalarName(ft) {
		case "uint32":
			slot.Kind = SlotScalar
			slot.Scalar = ScalarUint32
		case "string":
			slot.Kind = SlotScalar
			slot.Scalar = ScalarText
		default:
			r.unsupported(owner, field, fmt.Sprintf("%s is not a scalar terminal (only uint32 and string are)", scalarName(ft)))
			return MaskSlot{}, false
		}

	case analyze.TypeKindStruct:
		if !ft.IsNamed() || r.graph.GetType(ft.ID) == nil {
			r.unsupported(owner, field, "struct type is not in the analyzed packages")
			return MaskSlot{}, false
		}

		if r.resolveType(ft, nil, true) == nil {
			return MaskSlot{}, false
		}

		slot.Kind = SlotRecord
		slot.Record = ft

	default:
		r.unsupported(owner, field, fmt.Sprintf("field kind %s is not maskable", ft.Kind))
		return MaskSlot{}, false
	}

	return slot, true
}

func (r *Resolver) unsupported(owner *analyze.TypeInfo, field *analyze.FieldInfo, reason string) {
	r.diags.AddError("unsupported_field",
		fmt.Sprintf("field %s: %s", field.Name, reason),
		owner.ID.Name, field.Name)
}

// scalarName returns the basic type's name, tolerating hand-built graphs
// that carry the name in the TypeID instead of a go/types value.
func scalarName(info *analyze.TypeInfo) string {
	if info.ID.Name != "" {
		return info.ID.Name
	}

	if info.GoType != nil {
		return info.GoType.String()
	}

	return ""
}

// orderTypes returns the resolved mask types dependency-first, with a
// deterministic tie-break on the type's qualified name.
func (r *Resolver) orderTypes() ([]MaskType, error) {
	ids := make([]analyze.TypeID, 0, len(r.resolved))
	for id := range r.resolved {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	index := make(map[analyze.TypeID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	order, err := topoSortTypes(len(ids), func(i int) []int {
		var deps []int

		for _, slot := range r.resolved[ids[i]].Slots {
			if slot.Kind != SlotRecord {
				continue
			}

			if j, ok := index[slot.Record.ID]; ok && j != i {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		return nil, err
	}

	out := make([]MaskType, 0, len(order))
	for _, i := range order {
		out = append(out, *r.resolved[ids[i]])
	}

	return out, nil
}
