package semantic

import (
	"go/types"
	"sort"
	"strconv"
	"strings"
)

// RenderType renders t as it must be spelled inside generated code for pkg,
// together with the sorted import paths the spelling requires. Types from
// pkg itself render unqualified; foreign types render with their package
// name.
func RenderType(t types.Type, pkg *types.Package) (string, []string) {
	seen := make(map[string]bool)
	var imports []string
	qualifier := func(other *types.Package) string {
		if other == pkg {
			return ""
		}
		if !seen[other.Path()] {
			seen[other.Path()] = true
			imports = append(imports, other.Path())
		}
		return other.Name()
	}
	rendered := types.TypeString(t, qualifier)
	sort.Strings(imports)
	return rendered, imports
}

// IsContext reports whether t is context.Context.
func IsContext(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == "context" && obj.Name() == "Context"
}

// IsErrorResult reports whether the signature's single result is error.
func IsErrorResult(sig *types.Signature) bool {
	if sig.Results().Len() != 1 {
		return false
	}
	return types.Identical(sig.Results().At(0).Type(), types.Universe.Lookup("error").Type())
}

// IsBool reports whether t is the predeclared bool.
func IsBool(t types.Type) bool {
	basic, ok := t.(*types.Basic)
	return ok && basic.Kind() == types.Bool
}

// IsComparable reports whether values of t support ==.
func IsComparable(t types.Type) bool {
	return types.Comparable(t)
}

// MinGoVersion is the oldest language version command generation supports;
// the generic command types require it.
const MinGoVersion = "1.18"

// SupportsGeneration reports whether the module's go directive is at least
// MinGoVersion. An unknown version is assumed current.
func SupportsGeneration(version string) bool {
	major, minor, ok := parseGoVersion(version)
	if !ok {
		return true
	}
	return major > 1 || (major == 1 && minor >= 18)
}

func parseGoVersion(v string) (major, minor int, ok bool) {
	v = strings.TrimPrefix(v, "go")
	parts := strings.SplitN(v, ".", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
