package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// ErrLeakAnalyzer запрещает передавать текст ошибки клиенту через http.Error.
var ErrLeakAnalyzer = &analysis.Analyzer{
	Name:     "errleak",
	Doc:      "reports http.Error calls whose message is built from err.Error()",
	Run:      runErrLeakCheck,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var errorType = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

func runErrLeakCheck(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(node ast.Node) {
		call := node.(*ast.CallExpr)

		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "net/http" || fn.Name() != "Error" {
			return
		}
		if len(call.Args) < 2 {
			return
		}

		if errCall := findErrorCall(pass, call.Args[1]); errCall != nil {
			pass.Reportf(errCall.Pos(), "error text must not be sent to the client via http.Error")
		}
	})

	return nil, nil
}

// findErrorCall ищет вызов Error() у значения типа error внутри выражения
func findErrorCall(pass *analysis.Pass, expr ast.Expr) *ast.CallExpr {
	var found *ast.CallExpr
	ast.Inspect(expr, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) != 0 {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Error" {
			return true
		}
		if t := pass.TypesInfo.TypeOf(sel.X); t != nil && types.Implements(t, errorType) {
			found = call
			return false
		}
		return true
	})
	return found
}
