// Package config provides the YAML schema, parsing, environment overlay and
// validation for builder-generator settings.
//
// Settings come from three layers, later layers winning:
//  1. buildergen.yaml next to the package (optional)
//  2. environment variables, optionally seeded from a .env file
//  3. command-line flags
//
// # Schema Overview
//
//	version: "1"
//	missing: first              # or all: Build reports every unset required field
//	output: "{{.Snake}}_builder.go"
//	package: ""                 # package clause; default is the record's package
//	runtime: builder-generator/field
//	wrappers:
//	  optional: [Optional]      # a single name is accepted too
//	  repeated: [Repeated]
//	  optional_pointers: false  # classify *T as optional
//	  repeated_slices: true     # classify []T as repeated
//	records:
//	  - Entry                   # shorthand for {type: Entry}
//	  - type: Command
//	    builder: CommandBuilder
//	    constructor: NewCommandBuilder
//	    missing: all
//
// When records is empty, every struct in the package that carries a
// //builder directive gets a builder.
//
// # Environment
//
//   - BUILDERGEN_MISSING overrides missing
//   - BUILDERGEN_OPTIONAL_POINTERS overrides wrappers.optional_pointers
//   - BUILDERGEN_OUTPUT overrides output
package config
