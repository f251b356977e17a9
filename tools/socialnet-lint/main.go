// socialnet-lint is a custom static analyzer for social-core access patterns.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/social-core/tools/socialnet-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
