package manifest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/titanous/fieldmask/internal/analyze"
	"github.com/titanous/fieldmask/internal/diagnostic"
	"github.com/titanous/fieldmask/internal/suggest"
)

// maxSuggestions caps the near-miss candidates attached to a diagnostic.
const maxSuggestions = 3

// Validate validates a manifest against the given type graph. This is a
// structural validation step only; field-type eligibility is the
// planner's concern.
func Validate(m *Manifest, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if m == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "type graph is nil", "", "")
		return res
	}

	if len(m.Masks) == 0 {
		res.AddWarning("no_masks", "manifest requests no mask types", "", "")
	}

	seen := map[string]struct{}{}

	for i := range m.Masks {
		def := &m.Masks[i]

		if def.Type == "" {
			res.AddError("type_missing", "mask entry has no type", "", "")
			continue
		}

		if _, ok := seen[def.Type]; ok {
			res.AddError("duplicate_type", fmt.Sprintf("duplicate mask type %q", def.Type), def.Type, "")
			continue
		}

		seen[def.Type] = struct{}{}

		info := ResolveTypeID(def.Type, graph)
		if info == nil {
			res.AddErrorWithSuggestions("type_not_found",
				fmt.Sprintf("type %q not found in analyzed packages", def.Type),
				def.Type, "",
				suggest.Closest(bareTypeName(def.Type), typeNames(graph), maxSuggestions))

			continue
		}

		if info.Kind != analyze.TypeKindStruct {
			res.AddError("type_not_struct",
				fmt.Sprintf("type %q is not a struct (kind: %s)", def.Type, info.Kind),
				def.Type, "")

			continue
		}

		validateFieldRefs(res, def, info)
	}

	return res
}

// validateFieldRefs checks that ignore and rename entries reference real
// fields and that renames do not collide.
func validateFieldRefs(res *diagnostic.Diagnostics, def *MaskDef, info *analyze.TypeInfo) {
	fields := map[string]struct{}{}
	names := make([]string, 0, len(info.Fields))

	for i := range info.Fields {
		fields[info.Fields[i].Name] = struct{}{}
		names = append(names, info.Fields[i].Name)
	}

	for _, ig := range def.Ignore {
		if _, ok := fields[ig]; !ok {
			res.AddErrorWithSuggestions("ignore_field_not_found",
				fmt.Sprintf("ignored field %q not found", ig),
				def.Type, ig,
				suggest.Closest(ig, names, maxSuggestions))
		}
	}

	// Deterministic iteration for stable diagnostics ordering.
	renamed := make([]string, 0, len(def.Rename))
	for f := range def.Rename {
		renamed = append(renamed, f)
	}

	sort.Strings(renamed)

	segments := map[string]string{}

	for _, f := range renamed {
		if _, ok := fields[f]; !ok {
			res.AddErrorWithSuggestions("rename_field_not_found",
				fmt.Sprintf("renamed field %q not found", f),
				def.Type, f,
				suggest.Closest(f, names, maxSuggestions))

			continue
		}

		seg := def.Rename[f]
		if seg == "" {
			res.AddError("rename_empty", fmt.Sprintf("rename for field %q is empty", f), def.Type, f)
			continue
		}

		if other, ok := segments[seg]; ok {
			res.AddError("rename_collision",
				fmt.Sprintf("segment %q assigned to both %q and %q", seg, other, f),
				def.Type, f)
		}

		segments[seg] = f
	}
}

// bareTypeName strips the package qualifier from a type reference, so
// suggestions compare names against names.
func bareTypeName(typeRef string) string {
	if i := strings.LastIndex(typeRef, "."); i >= 0 {
		return typeRef[i+1:]
	}

	return typeRef
}

// typeNames returns the display names of all struct types in the graph,
// sorted for deterministic suggestions.
func typeNames(graph *analyze.TypeGraph) []string {
	var names []string

	for id, t := range graph.Types {
		if t.Kind == analyze.TypeKindStruct {
			names = append(names, id.Name)
		}
	}

	sort.Strings(names)

	return names
}
