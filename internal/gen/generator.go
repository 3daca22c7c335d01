package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/titanous/fieldmask/internal/common"
	"github.com/titanous/fieldmask/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir overrides the output directory for all generated files.
	// When empty, each file is written into its record type's own
	// package directory.
	OutputDir string
	// GenerateComments enables per-slot path comments on mask structs.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
	}
}

// Generator generates Go code from a resolved mask plan.
type Generator struct {
	config GeneratorConfig
	plan   *plan.MaskPlan
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "user_mask.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per mask type in the plan. The plan's
// order (dependency-first, deterministic) is preserved.
func (g *Generator) Generate(p *plan.MaskPlan) ([]GeneratedFile, error) {
	g.plan = p

	var files []GeneratedFile

	for i := range p.Types {
		file, err := g.generateMaskType(&p.Types[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.Types[i].Type.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateMaskType generates the mask file for a single record type.
func (g *Generator) generateMaskType(mt *plan.MaskType) (*GeneratedFile, error) {
	data := g.buildTemplateData(mt)

	var buf bytes.Buffer
	if err := maskTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	dir := g.config.OutputDir
	if dir == "" {
		if pkg, ok := g.plan.TypeGraph.Packages[mt.Type.ID.PkgPath]; ok {
			dir = pkg.Dir
		}
	}

	filename := common.SnakeCase(mt.Type.ID.Name) + "_mask.go"

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort sidecar with the unformatted code to aid debugging.
		_ = writeDebugUnformatted(dir, filename, buf.Bytes())

		return &GeneratedFile{
			Dir:      dir,
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Dir:      dir,
		Filename: filename,
		Content:  formatted,
	}, nil
}

var maskTemplate = template.Must(template.New("mask").Parse(`// Code generated by maskgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

// {{.MaskName}} selects fields of {{.TypeName}} for a masked merge.
type {{.MaskName}} struct {
{{range .Slots}}	{{.FieldName}} {{.MaskType}}{{if .Comment}} // {{.Comment}}{{end}}
{{end}}}

// Deserialize{{.MaskName}} folds one field path, pre-split into
// segments, into mask. An empty path selects the whole value. A segment
// that does not name a field fails with a maskable.DeserializeMaskError.
func Deserialize{{.MaskName}}(mask *{{.MaskName}}, segs []string) error {
	if len(segs) == 0 {
		SelectAll{{.MaskName}}(mask)
		return nil
	}
{{if .Slots}}	seg, rest := segs[0], segs[1:]
	switch seg {
{{range .Slots}}	case "{{.Segment}}":
		if err := {{.ParseFunc}}(&mask.{{.FieldName}}, rest); err != nil {
			return maskable.BumpDepth(err)
		}
{{end}}	default:
		return &maskable.DeserializeMaskError{Type: "{{.TypeName}}", Field: seg}
	}
	return nil
{{else}}	return &maskable.DeserializeMaskError{Type: "{{.TypeName}}", Field: segs[0]}
{{end}}}

// SelectAll{{.MaskName}} marks every slot of mask, recursively.
func SelectAll{{.MaskName}}(mask *{{.MaskName}}) {
{{range .Slots}}	{{.SelectStmt}}
{{end}}}

// Apply{{.MaskName}} merges mask-selected fields of src into dst.
func Apply{{.MaskName}}(dst *{{.TypeName}}, src {{.TypeName}}, mask {{.MaskName}}) {
{{range .Slots}}	{{.ApplyStmt}}
{{end}}}

// Apply{{.MaskName}}Presence merges like Apply{{.MaskName}} and always
// reports the result present.
func Apply{{.MaskName}}Presence(dst *{{.TypeName}}, src {{.TypeName}}, mask {{.MaskName}}) bool {
	Apply{{.MaskName}}(dst, src, mask)
	return true
}
`))
