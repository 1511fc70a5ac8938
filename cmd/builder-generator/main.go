// The builder-generator command generates builder types for Go structs.
//
// For every selected struct R it writes r_builder.go declaring RBuilder,
// NewRBuilder, one setter per field and a Build method that fails when a
// required field was never set. Field categories follow the declared type:
//
//	type Command struct {
//		Executable string                   // required
//		//builder:each="Arg"
//		Args       []string                 // repeated, with an Arg(string) setter
//		CurrentDir field.Optional[string]   // optional
//	}
//
// Usage:
//
//	//go:generate go run builder-generator/cmd/builder-generator -type Command
//
// Without -type, records listed in buildergen.yaml are generated, and
// without that, every struct carrying a //builder directive.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
