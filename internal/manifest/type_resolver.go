package manifest

import (
	"strings"

	"github.com/titanous/fieldmask/internal/analyze"
)

// ResolveTypeID resolves a type reference string like:
// - "basic.User" (short)
// - "github.com/acme/app/basic.User" (full)
// - "User" (name only).
func ResolveTypeID(typeRef string, graph *analyze.TypeGraph) *analyze.TypeInfo {
	if graph == nil {
		return nil
	}

	// Name-only: best-effort match by type name.
	if !strings.Contains(typeRef, ".") {
		if typeRef == "" {
			return nil
		}

		for id, t := range graph.Types {
			if id.Name == typeRef {
				return t
			}
		}

		return nil
	}

	lastDot := strings.LastIndex(typeRef, ".")

	pkgStr := typeRef[:lastDot]

	name := typeRef[lastDot+1:]
	if pkgStr == "" || name == "" {
		return nil
	}

	// 1) exact match (fully qualified import path)
	if t := graph.GetType(analyze.TypeID{PkgPath: pkgStr, Name: name}); t != nil {
		return t
	}

	// 2) suffix match (short forms like "basic.User")
	for id, t := range graph.Types {
		if id.Name != name {
			continue
		}

		if id.PkgPath == pkgStr || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			return t
		}
	}

	return nil
}
