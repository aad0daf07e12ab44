package semantic

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
)

// CheckSource type-checks a single in-memory file and builds a Pass for it.
// Used by tests and by `mvvmgen inspect --source` to analyze a snippet
// without a surrounding module. Like Load, type errors are tolerated and the
// pass is built from the partial view, so a snippet may reference
// declarations that only exist after generation.
func CheckSource(filename, src, goVersion string) (*Pass, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	info := &types.Info{
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
		Types: make(map[ast.Expr]types.TypeAndValue),
	}
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error:    func(error) {},
	}
	pkg, _ := conf.Check(file.Name.Name, fset, []*ast.File{file}, info)

	return BuildPass(fset, []*ast.File{file}, pkg, info, goVersion), nil
}
