package manifest

// Manifest represents the root of a YAML mask-generation manifest.
// This is the authoritative, human-reviewed generation configuration.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages lists the Go package patterns to analyze
	// (e.g., "./examples/basic").
	Packages []string `yaml:"packages"`

	// Output holds generation output options.
	Output OutputDef `yaml:"output,omitempty"`

	// Masks lists the record types to generate mask shapes for.
	Masks []MaskDef `yaml:"masks"`
}

// OutputDef holds generation output options.
type OutputDef struct {
	// Dir overrides the output directory. When empty, each generated
	// file is written into its record type's own package directory.
	Dir string `yaml:"dir,omitempty"`
}

// MaskDef pins one record type for mask generation.
type MaskDef struct {
	// Type references the record type (e.g., "basic.User" or a full
	// import path).
	Type string `yaml:"type"`

	// Ignore lists Go field names excluded from the mask shape.
	Ignore []string `yaml:"ignore,omitempty"`

	// Rename overrides the path segment for a Go field name.
	Rename map[string]string `yaml:"rename,omitempty"`
}
