package semantic

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// Load type-checks the packages matched by patterns under dir and builds one
// Pass per package. Type errors are tolerated and the pass works from the
// partial view: a view model embeds its generated state struct, so before the
// first run the package cannot type-check, and the run must still happen to
// produce it. List and parse failures remain hard errors.
func Load(ctx context.Context, dir string, patterns ...string) ([]*Pass, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedModule,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var passes []*Pass
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				continue
			}
			return nil, fmt.Errorf("package %s does not compile: %v", pkg.PkgPath, e)
		}
		if pkg.Types == nil || pkg.TypesInfo == nil {
			continue
		}
		goVersion := ""
		if pkg.Module != nil {
			goVersion = pkg.Module.GoVersion
		}
		pass := BuildPass(pkg.Fset, pkg.Syntax, pkg.Types, pkg.TypesInfo, goVersion)
		if len(pkg.GoFiles) > 0 {
			pass.Dir = filepath.Dir(pkg.GoFiles[0])
		}
		passes = append(passes, pass)
	}
	return passes, nil
}
