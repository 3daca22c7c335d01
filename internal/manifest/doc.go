// Package manifest provides YAML schema definitions, parsing, and
// validation for mask-generation manifests.
//
// The manifest pins which record types get generated mask shapes and
// how their fields appear in field paths:
//
//	version: "1"
//	packages:
//	  - ./examples/basic
//	masks:
//	  - type: basic.User
//	    ignore:
//	      - Internal
//	    rename:
//	      FullName: name
//
// Type references resolve like Go qualified names: a full import path
// ("github.com/acme/app/basic.User"), a short package form
// ("basic.User"), or a bare type name ("User") when unambiguous.
//
// Fields listed under ignore are excluded from the mask shape entirely,
// so a field path naming them fails with an unknown-field error at
// runtime. rename overrides the path segment of a field (the default is
// the json tag name, else snake_case of the Go name).
package manifest
