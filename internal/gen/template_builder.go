package gen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/titanous/fieldmask/internal/analyze"
	"github.com/titanous/fieldmask/internal/common"
	"github.com/titanous/fieldmask/internal/plan"
)

// maskablePkgPath is the import path of the runtime package generated
// code depends on.
const maskablePkgPath = "github.com/titanous/fieldmask/maskable"

// templateData holds all data needed for the mask template.
type templateData struct {
	PackageName string
	TypeName    string
	MaskName    string
	Imports     []importSpec
	Slots       []slotData
}

// importSpec is one import of the generated file.
type importSpec struct {
	Alias string
	Path  string
}

// slotData represents a single mask slot in the generated code.
type slotData struct {
	FieldName  string
	MaskType   string
	Segment    string
	ParseFunc  string
	SelectStmt string
	ApplyStmt  string
	Comment    string
}

// buildTemplateData constructs the template data for one mask type.
func (g *Generator) buildTemplateData(mt *plan.MaskType) *templateData {
	typeName := mt.Type.ID.Name

	data := &templateData{
		PackageName: g.pkgName(mt.Type.ID.PkgPath),
		TypeName:    typeName,
		MaskName:    typeName + "Mask",
	}

	imports := map[string]importSpec{
		maskablePkgPath: {Path: maskablePkgPath},
	}

	for _, slot := range mt.Slots {
		sd := slotData{
			FieldName: slot.FieldName,
			Segment:   slot.Segment,
		}

		if g.config.GenerateComments {
			sd.Comment = fmt.Sprintf("masks %q", slot.Segment)
		}

		field := "dst." + slot.FieldName
		src := "src." + slot.FieldName
		maskField := "mask." + slot.FieldName

		switch slot.Kind {
		case plan.SlotScalar:
			fn := scalarFunc(slot.Scalar)
			sd.MaskType = "bool"
			sd.ParseFunc = "maskable.Deserialize" + fn + "Mask"
			sd.SelectStmt = maskField + " = true"

			if slot.OptionDepth == 0 {
				sd.ApplyStmt = fmt.Sprintf("maskable.Apply%sMask(&%s, %s, %s)", fn, field, src, maskField)
			} else {
				presence := wrapPresence("maskable.Apply"+fn+"MaskPresence", slot.OptionDepth-1)
				sd.ApplyStmt = fmt.Sprintf("maskable.ApplyOptionMask(&%s, %s, %s, %s)", field, src, maskField, presence)
			}

		case plan.SlotRecord:
			prefix := g.qualify(mt.Type.ID.PkgPath, slot.Record, imports)
			name := slot.Record.ID.Name

			sd.MaskType = prefix + name + "Mask"
			sd.ParseFunc = prefix + "Deserialize" + name + "Mask"
			sd.SelectStmt = fmt.Sprintf("%sSelectAll%sMask(&%s)", prefix, name, maskField)

			if slot.OptionDepth == 0 {
				sd.ApplyStmt = fmt.Sprintf("%sApply%sMask(&%s, %s, %s)", prefix, name, field, src, maskField)
			} else {
				presence := wrapPresence(prefix+"Apply"+name+"MaskPresence", slot.OptionDepth-1)
				sd.ApplyStmt = fmt.Sprintf("maskable.ApplyOptionMask(&%s, %s, %s, %s)", field, src, maskField, presence)
			}
		}

		data.Slots = append(data.Slots, sd)
	}

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}

// wrapPresence wraps a presence applier expression in n Option layers.
func wrapPresence(expr string, n int) string {
	for i := 0; i < n; i++ {
		expr = "maskable.ApplyOptionMaskPresence(" + expr + ")"
	}

	return expr
}

// scalarFunc returns the runtime function stem for a scalar terminal.
func scalarFunc(k plan.ScalarKind) string {
	if k == plan.ScalarUint32 {
		return "Uint32"
	}

	return "Text"
}

// qualify returns the package qualifier ("" or "pkg.") for referencing
// a record type from the package being generated into, registering the
// import when one is needed.
func (g *Generator) qualify(fromPkgPath string, record *analyze.TypeInfo, imports map[string]importSpec) string {
	if record.ID.PkgPath == fromPkgPath {
		return ""
	}

	name := g.pkgName(record.ID.PkgPath)

	spec := importSpec{Path: record.ID.PkgPath}
	if name != common.PkgAlias(record.ID.PkgPath) {
		spec.Alias = name
	}

	imports[record.ID.PkgPath] = spec

	return name + "."
}

// pkgName returns the package name for an import path, preferring the
// analyzed package info and falling back to the path's last element.
func (g *Generator) pkgName(pkgPath string) string {
	if g.plan != nil {
		if pkg, ok := g.plan.TypeGraph.Packages[pkgPath]; ok && pkg.Name != "" {
			return pkg.Name
		}
	}

	return strings.ReplaceAll(common.PkgAlias(pkgPath), "-", "_")
}
