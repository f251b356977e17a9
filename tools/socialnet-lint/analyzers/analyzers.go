// Package analyzers provides all custom static analyzers for social-core.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/social-core/tools/socialnet-lint/analyzers/copyloop"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		copyloop.Analyzer,
	}
}
