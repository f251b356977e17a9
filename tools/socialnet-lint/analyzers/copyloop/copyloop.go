// Package copyloop detects whole-registry copies made inside loops.
package copyloop

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports registry methods that copy every record when they are
// called from a loop body. Hoist the call above the loop instead.
var Analyzer = &analysis.Analyzer{
	Name:     "copyloop",
	Doc:      "detects whole-registry copies made inside loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// copyingMethods return a fresh copy of registry state on every call.
var copyingMethods = map[string]string{
	"People":               "copies every person",
	"Relations":            "copies every relation",
	"GroupByFavoriteMovie": "rebuilds the movie index",
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			// Nested loops are visited by Preorder on their own.
			switch n.(type) {
			case *ast.RangeStmt, *ast.ForStmt, *ast.FuncLit:
				return false
			}

			call, ok := n.(*ast.CallExpr)
			if !ok || len(call.Args) != 0 {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			if what, found := copyingMethods[sel.Sel.Name]; found {
				pass.Reportf(call.Pos(),
					"%s called inside loop %s on each iteration - hoist it above the loop",
					sel.Sel.Name, what)
			}

			return true
		})
	})

	return nil, nil
}
