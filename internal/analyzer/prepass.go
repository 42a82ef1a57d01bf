package analyzer

import "github.com/tova-lang/tova/internal/ast"

// prepass builds the {block-name -> [function-names]} map spec.md §4.7
// requires before the main walk can validate `other.fn()` cross-block RPC
// calls against functions declared in peer blocks that haven't been
// visited yet.
func (a *Analyzer) prepass(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		block, ok := stmt.(*ast.BlockForm)
		if !ok || block.Name == "" {
			continue
		}
		names := a.blockFunctions[block.Name]
		if names == nil {
			names = make(map[string]bool)
			a.blockFunctions[block.Name] = names
		}
		for _, inner := range block.Statements {
			switch fn := inner.(type) {
			case *ast.FunctionDeclaration:
				names[fn.Name] = true
			case *ast.PluginDeclaration:
				if fn.Kind == ast.PluginRoute {
					names[fn.Name] = true
				}
			}
		}
	}
}
