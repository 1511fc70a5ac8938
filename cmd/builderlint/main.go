// Command builderlint checks builder directives without generating code.
//
//	go vet -vettool=$(which builderlint) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"builder-generator/pkg/builderanalysis"
)

func main() {
	singlechecker.Main(builderanalysis.Analyzer)
}
