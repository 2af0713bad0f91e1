// Package uncheckedctor defines an analyzer that reports calls to
// checkedfloat.NewUnchecked that are not marked as trusted.
package uncheckedctor

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const Doc = `report unmarked calls to checkedfloat.NewUnchecked

NewUnchecked builds a value without checking it against its policy. Every
call outside package checkedfloat must carry a //checkedfloat:trusted
comment, either on the same line or on the line directly above, to mark
that the caller has established the policy for the raw value.`

const (
	// Marker is the comment prefix that exempts a call.
	Marker = "//checkedfloat:trusted"

	pkgPath  = "github.com/tsatke/checkedfloat"
	funcName = "NewUnchecked"
)

var Analyzer = &analysis.Analyzer{
	Name:     "uncheckedctor",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Path() == pkgPath {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	trusted := markedLines(pass)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		if !isNewUnchecked(pass.TypesInfo, call) {
			return
		}

		pos := pass.Fset.Position(call.Pos())
		if lines := trusted[pos.Filename]; lines[pos.Line] || lines[pos.Line-1] {
			return
		}
		pass.Reportf(call.Pos(), "call to checkedfloat.%s without %s marker", funcName, Marker)
	})

	return nil, nil
}

func isNewUnchecked(info *types.Info, call *ast.CallExpr) bool {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == pkgPath && fn.Origin().Name() == funcName
}

// markedLines returns, per file name, the lines holding a marker comment.
func markedLines(pass *analysis.Pass) map[string]map[int]bool {
	marked := make(map[string]map[int]bool)
	for _, f := range pass.Files {
		for _, group := range f.Comments {
			for _, c := range group.List {
				if !strings.HasPrefix(c.Text, Marker) {
					continue
				}
				p := pass.Fset.Position(c.Slash)
				if marked[p.Filename] == nil {
					marked[p.Filename] = make(map[int]bool)
				}
				marked[p.Filename][p.Line] = true
			}
		}
	}
	return marked
}
