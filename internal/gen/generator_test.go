package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titanous/fieldmask/internal/analyze"
	"github.com/titanous/fieldmask/internal/plan"
)

func scalarType(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		ID:   analyze.TypeID{Name: name},
		Kind: analyze.TypeKindBasic,
	}
}

func graphWithPackages(pkgs ...*analyze.PackageInfo) *analyze.TypeGraph {
	g := analyze.NewTypeGraph()
	for _, pkg := range pkgs {
		g.Packages[pkg.Path] = pkg
	}

	return g
}

func TestGenerator_Generate_ScalarSlots(t *testing.T) {
	userType := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/basic", Name: "User"},
		Kind: analyze.TypeKindStruct,
		Fields: []analyze.FieldInfo{
			{Name: "Age", Exported: true, Type: scalarType("uint32")},
			{Name: "Name", Exported: true, Type: scalarType("string")},
		},
	}

	p := &plan.MaskPlan{
		Types: []plan.MaskType{
			{
				Type: userType,
				Slots: []plan.MaskSlot{
					{FieldName: "Age", Segment: "age", Kind: plan.SlotScalar, Scalar: plan.ScalarUint32},
					{FieldName: "Name", Segment: "name", Kind: plan.SlotScalar, Scalar: plan.ScalarText},
				},
			},
		},
		TypeGraph: graphWithPackages(&analyze.PackageInfo{
			Path: "example/basic",
			Name: "basic",
			Dir:  "/src/example/basic",
		}),
	}

	gen := NewGenerator(DefaultGeneratorConfig())
	files, err := gen.Generate(p)

	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "user_mask.go", files[0].Filename)
	assert.Equal(t, "/src/example/basic", files[0].Dir)

	content := string(files[0].Content)

	assert.Contains(t, content, "// Code generated by maskgen. DO NOT EDIT.")
	assert.Contains(t, content, "package basic")
	assert.Contains(t, content, `"github.com/titanous/fieldmask/maskable"`)

	// Mask shape: one bool flag per scalar slot, with path comments.
	assert.Contains(t, content, "type UserMask struct {")
	assert.Contains(t, content, `Age  bool // masks "age"`)
	assert.Contains(t, content, `Name bool // masks "name"`)

	// Parser dispatches on segments and bumps depth on nested failures.
	assert.Contains(t, content, "func DeserializeUserMask(mask *UserMask, segs []string) error {")
	assert.Contains(t, content, `case "age":`)
	assert.Contains(t, content, "maskable.DeserializeUint32Mask(&mask.Age, rest)")
	assert.Contains(t, content, "maskable.DeserializeTextMask(&mask.Name, rest)")
	assert.Contains(t, content, "maskable.BumpDepth(err)")
	assert.Contains(t, content, `return &maskable.DeserializeMaskError{Type: "User", Field: seg}`)

	// Whole-value selection and appliers.
	assert.Contains(t, content, "func SelectAllUserMask(mask *UserMask) {")
	assert.Contains(t, content, "mask.Age = true")
	assert.Contains(t, content, "func ApplyUserMask(dst *User, src User, mask UserMask) {")
	assert.Contains(t, content, "maskable.ApplyUint32Mask(&dst.Age, src.Age, mask.Age)")
	assert.Contains(t, content, "maskable.ApplyTextMask(&dst.Name, src.Name, mask.Name)")
	assert.Contains(t, content, "func ApplyUserMaskPresence(dst *User, src User, mask UserMask) bool {")
}

func TestGenerator_Generate_OptionSlot(t *testing.T) {
	contactType := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/nested", Name: "Contact"},
		Kind: analyze.TypeKindStruct,
	}

	p := &plan.MaskPlan{
		Types: []plan.MaskType{
			{
				Type: contactType,
				Slots: []plan.MaskSlot{
					{FieldName: "Email", Segment: "email", Kind: plan.SlotScalar, Scalar: plan.ScalarText},
					{FieldName: "Phone", Segment: "phone", Kind: plan.SlotScalar, Scalar: plan.ScalarText, OptionDepth: 1},
				},
			},
		},
		TypeGraph: graphWithPackages(&analyze.PackageInfo{
			Path: "example/nested",
			Name: "nested",
			Dir:  "/src/example/nested",
		}),
	}

	gen := NewGenerator(DefaultGeneratorConfig())
	files, err := gen.Generate(p)

	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	// An Option layer adds no mask dimension: the slot is still a bool
	// and the parser delegates to the scalar parser unchanged.
	assert.Contains(t, content, `Phone bool // masks "phone"`)
	assert.Contains(t, content, "maskable.DeserializeTextMask(&mask.Phone, rest)")

	// But the applier goes through the Option merge.
	assert.Contains(t, content,
		"maskable.ApplyOptionMask(&dst.Phone, src.Phone, mask.Phone, maskable.ApplyTextMaskPresence)")
}

func TestGenerator_Generate_DoubleOptionWrapsPresence(t *testing.T) {
	recType := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/nested", Name: "Draft"},
		Kind: analyze.TypeKindStruct,
	}

	p := &plan.MaskPlan{
		Types: []plan.MaskType{
			{
				Type: recType,
				Slots: []plan.MaskSlot{
					{FieldName: "Note", Segment: "note", Kind: plan.SlotScalar, Scalar: plan.ScalarText, OptionDepth: 2},
				},
			},
		},
		TypeGraph: graphWithPackages(&analyze.PackageInfo{
			Path: "example/nested",
			Name: "nested",
			Dir:  "/src/example/nested",
		}),
	}

	gen := NewGenerator(DefaultGeneratorConfig())
	files, err := gen.Generate(p)

	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Contains(t, string(files[0].Content),
		"maskable.ApplyOptionMask(&dst.Note, src.Note, mask.Note, maskable.ApplyOptionMaskPresence(maskable.ApplyTextMaskPresence))")
}

func TestGenerator_Generate_NestedRecordSamePackage(t *testing.T) {
	contactType := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/nested", Name: "Contact"},
		Kind: analyze.TypeKindStruct,
	}
	profileType := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/nested", Name: "Profile"},
		Kind: analyze.TypeKindStruct,
	}

	p := &plan.MaskPlan{
		Types: []plan.MaskType{
			{
				Type: contactType,
				Slots: []plan.MaskSlot{
					{FieldName: "Email", Segment: "email", Kind: plan.SlotScalar, Scalar: plan.ScalarText},
				},
				Implicit: true,
			},
			{
				Type: profileType,
				Slots: []plan.MaskSlot{
					{FieldName: "ID", Segment: "id", Kind: plan.SlotScalar, Scalar: plan.ScalarUint32},
					{FieldName: "Contact", Segment: "contact", Kind: plan.SlotRecord, Record: contactType},
					{FieldName: "Backup", Segment: "backup", Kind: plan.SlotRecord, Record: contactType, OptionDepth: 1},
				},
			},
		},
		TypeGraph: graphWithPackages(&analyze.PackageInfo{
			Path: "example/nested",
			Name: "nested",
			Dir:  "/src/example/nested",
		}),
	}

	gen := NewGenerator(DefaultGeneratorConfig())
	files, err := gen.Generate(p)

	require.NoError(t, err)
	require.Len(t, files, 2)

	// Dependency-first order from the plan is preserved.
	assert.Equal(t, "contact_mask.go", files[0].Filename)
	assert.Equal(t, "profile_mask.go", files[1].Filename)

	content := string(files[1].Content)

	// Nested record slot holds the nested mask shape.
	assert.Contains(t, content, "Contact ContactMask")
	assert.Contains(t, content, "DeserializeContactMask(&mask.Contact, rest)")
	assert.Contains(t, content, "SelectAllContactMask(&mask.Contact)")
	assert.Contains(t, content, "ApplyContactMask(&dst.Contact, src.Contact, mask.Contact)")

	// Optional record slot goes through the Option merge with the
	// record's presence applier.
	assert.Contains(t, content,
		"maskable.ApplyOptionMask(&dst.Backup, src.Backup, mask.Backup, ApplyContactMaskPresence)")

	// Same-package reference needs no extra import.
	assert.Equal(t, 1, strings.Count(content, "import"))
}

func TestGenerator_Generate_CrossPackageRecordImport(t *testing.T) {
	imageType := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/media", Name: "Image"},
		Kind: analyze.TypeKindStruct,
	}
	profileType := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/nested", Name: "Profile"},
		Kind: analyze.TypeKindStruct,
	}

	p := &plan.MaskPlan{
		Types: []plan.MaskType{
			{
				Type: imageType,
				Slots: []plan.MaskSlot{
					{FieldName: "URL", Segment: "url", Kind: plan.SlotScalar, Scalar: plan.ScalarText},
				},
			},
			{
				Type: profileType,
				Slots: []plan.MaskSlot{
					{FieldName: "Avatar", Segment: "avatar", Kind: plan.SlotRecord, Record: imageType, OptionDepth: 1},
				},
			},
		},
		TypeGraph: graphWithPackages(
			&analyze.PackageInfo{Path: "example/media", Name: "media", Dir: "/src/example/media"},
			&analyze.PackageInfo{Path: "example/nested", Name: "nested", Dir: "/src/example/nested"},
		),
	}

	gen := NewGenerator(DefaultGeneratorConfig())
	files, err := gen.Generate(p)

	require.NoError(t, err)
	require.Len(t, files, 2)

	// Each file lands in its own record's package directory.
	assert.Equal(t, "/src/example/media", files[0].Dir)
	assert.Equal(t, "/src/example/nested", files[1].Dir)

	content := string(files[1].Content)

	assert.Contains(t, content, `"example/media"`)
	assert.Contains(t, content, "Avatar media.ImageMask")
	assert.Contains(t, content, "media.DeserializeImageMask(&mask.Avatar, rest)")
	assert.Contains(t, content, "media.SelectAllImageMask(&mask.Avatar)")
	assert.Contains(t, content,
		"maskable.ApplyOptionMask(&dst.Avatar, src.Avatar, mask.Avatar, media.ApplyImageMaskPresence)")
}

func TestGenerator_Generate_OutputDirOverride(t *testing.T) {
	userType := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/basic", Name: "User"},
		Kind: analyze.TypeKindStruct,
	}

	p := &plan.MaskPlan{
		Types: []plan.MaskType{
			{
				Type: userType,
				Slots: []plan.MaskSlot{
					{FieldName: "Name", Segment: "name", Kind: plan.SlotScalar, Scalar: plan.ScalarText},
				},
			},
		},
		TypeGraph: graphWithPackages(&analyze.PackageInfo{
			Path: "example/basic",
			Name: "basic",
			Dir:  "/src/example/basic",
		}),
	}

	gen := NewGenerator(GeneratorConfig{OutputDir: "/tmp/out", GenerateComments: true})
	files, err := gen.Generate(p)

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "/tmp/out", files[0].Dir)
}

func TestGenerator_Generate_CommentsDisabled(t *testing.T) {
	userType := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/basic", Name: "User"},
		Kind: analyze.TypeKindStruct,
	}

	p := &plan.MaskPlan{
		Types: []plan.MaskType{
			{
				Type: userType,
				Slots: []plan.MaskSlot{
					{FieldName: "Name", Segment: "name", Kind: plan.SlotScalar, Scalar: plan.ScalarText},
				},
			},
		},
		TypeGraph: graphWithPackages(&analyze.PackageInfo{
			Path: "example/basic",
			Name: "basic",
			Dir:  "/src/example/basic",
		}),
	}

	gen := NewGenerator(GeneratorConfig{GenerateComments: false})
	files, err := gen.Generate(p)

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.NotContains(t, string(files[0].Content), `// masks`)
}

func TestGenerator_Generate_SnakeCaseFilename(t *testing.T) {
	recType := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/basic", Name: "UserProfile"},
		Kind: analyze.TypeKindStruct,
	}

	p := &plan.MaskPlan{
		Types: []plan.MaskType{
			{
				Type: recType,
				Slots: []plan.MaskSlot{
					{FieldName: "Name", Segment: "name", Kind: plan.SlotScalar, Scalar: plan.ScalarText},
				},
			},
		},
		TypeGraph: graphWithPackages(&analyze.PackageInfo{
			Path: "example/basic",
			Name: "basic",
			Dir:  "/src/example/basic",
		}),
	}

	gen := NewGenerator(DefaultGeneratorConfig())
	files, err := gen.Generate(p)

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "user_profile_mask.go", files[0].Filename)
}
