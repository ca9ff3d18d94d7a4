// Command placeholderlint is a linter that reports placeholder tokens and
// placeholder syntax left where the real thing is available.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/placeholderlint"
)

func main() {
	singlechecker.Main(placeholderlint.Analyzer)
}
