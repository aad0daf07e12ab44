package semantic

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPass(t *testing.T, src string) *Pass {
	t.Helper()
	pass, err := CheckSource("vm.go", src, "1.24")
	require.NoError(t, err)
	return pass
}

func TestBuildPass_DeclarationOrder(t *testing.T) {
	// Test: types, fields, and methods are recorded in source order, and a
	// method declared before its receiver type still attaches to it
	src := `package viewmodels

func (v *VM) Early() {}

type Base struct{}

type VM struct {
	Base
	name string
	age  int
}

func (v *VM) Late() {}
`
	pass := buildPass(t, src)

	require.Len(t, pass.Types, 2)
	assert.Equal(t, "Base", pass.Types[0].Name)
	assert.Equal(t, "VM", pass.Types[1].Name)

	vm, ok := pass.Type("VM")
	require.True(t, ok)
	require.Len(t, vm.Fields, 3)
	assert.Equal(t, "Base", vm.Fields[0].Name)
	assert.True(t, vm.Fields[0].Embedded)
	assert.Equal(t, "name", vm.Fields[1].Name)
	assert.Equal(t, "age", vm.Fields[2].Name)

	require.Len(t, vm.Methods, 2)
	assert.Equal(t, "Early", vm.Methods[0].Name)
	assert.Equal(t, "Late", vm.Methods[1].Name)
}

func TestBuildPass_CrossFileMethodOrder(t *testing.T) {
	// Test: methods spread over several files order by file name first, then
	// by offset within the file, independent of type-check file order
	fileA := `package viewmodels

// Padding so the method below sits at a larger offset than any
// declaration in the other file. Offsets from different files must
// never be compared against each other.
func (v *VM) Alpha() {}
`
	fileB := `package viewmodels

type VM struct{}

func (v *VM) Beta() {}

func (v *VM) Gamma() {}
`
	fset := token.NewFileSet()
	parse := func(name, src string) *ast.File {
		f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		require.NoError(t, err)
		return f
	}
	// Register b.go first so raw token positions disagree with file-name
	// order.
	fb := parse("b.go", fileB)
	fa := parse("a.go", fileA)

	info := &types.Info{
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
		Types: make(map[ast.Expr]types.TypeAndValue),
	}
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check("viewmodels", fset, []*ast.File{fb, fa}, info)
	require.NoError(t, err)

	pass := BuildPass(fset, []*ast.File{fb, fa}, pkg, info, "1.24")
	vm, ok := pass.Type("VM")
	require.True(t, ok)

	require.Len(t, vm.Methods, 3)
	assert.Equal(t, "Alpha", vm.Methods[0].Name)
	assert.Equal(t, "Beta", vm.Methods[1].Name)
	assert.Equal(t, "Gamma", vm.Methods[2].Name)
}

func TestBuildPass_Markers(t *testing.T) {
	// Test: directives are read from method doc blocks and from field doc or
	// trailing comments
	src := `package viewmodels

type VM struct {
	//mvvm:observable
	name string
	busy bool //mvvm:observable
	plain int
}

// Save persists the form.
//
//mvvm:command allowConcurrent
func (v *VM) Save() error { return nil }
`
	pass := buildPass(t, src)
	vm, _ := pass.Type("VM")

	require.Len(t, vm.Fields[0].Markers, 1)
	assert.Equal(t, "observable", vm.Fields[0].Markers[0].Name)
	require.Len(t, vm.Fields[1].Markers, 1)
	assert.Empty(t, vm.Fields[2].Markers)

	require.Len(t, vm.Methods, 1)
	require.Len(t, vm.Methods[0].Markers, 1)
	m := vm.Methods[0].Markers[0]
	assert.Equal(t, "command", m.Name)
	assert.True(t, m.Flag("allowConcurrent"))
}

func TestAllMembers_Promotion(t *testing.T) {
	// Test: promoted members follow the level's own, depth increases per
	// embedding level, and shadowed members remain listed
	src := `package viewmodels

type Inner struct {
	Ready bool
}

type Base struct {
	Inner
	Ready bool
}

func (b *Base) Refresh() {}

type VM struct {
	*Base
	name string
}

func (v *VM) Refresh() {}
`
	pass := buildPass(t, src)
	vm, _ := pass.Type("VM")

	byName := map[string][]int{}
	for _, m := range pass.AllMembers(vm) {
		byName[m.Name] = append(byName[m.Name], m.Depth)
	}

	assert.Equal(t, []int{0}, byName["name"])
	assert.Equal(t, []int{0, 1}, byName["Refresh"])
	assert.Equal(t, []int{1, 2}, byName["Ready"])

	matches := pass.MembersNamed(vm, "Refresh")
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Depth)
}

func TestRenderType(t *testing.T) {
	// Test: local types render unqualified, foreign types carry their import
	src := `package viewmodels

import "time"

type Item struct{}

type VM struct {
	modified time.Time
	items    []*Item
	pairs    map[string]time.Duration
}
`
	pass := buildPass(t, src)
	vm, _ := pass.Type("VM")

	rendered, imports := RenderType(vm.Fields[0].Type, pass.Pkg)
	assert.Equal(t, "time.Time", rendered)
	assert.Equal(t, []string{"time"}, imports)

	rendered, imports = RenderType(vm.Fields[1].Type, pass.Pkg)
	assert.Equal(t, "[]*Item", rendered)
	assert.Empty(t, imports)

	rendered, imports = RenderType(vm.Fields[2].Type, pass.Pkg)
	assert.Equal(t, "map[string]time.Duration", rendered)
	assert.Equal(t, []string{"time"}, imports)
}

func TestTypePredicates(t *testing.T) {
	// Test: the context, error-result, and comparability predicates
	src := `package viewmodels

import "context"

type VM struct {
	items []string
	name  string
}

func (v *VM) Load(ctx context.Context) error { return nil }
func (v *VM) Save() {}
`
	pass := buildPass(t, src)
	vm, _ := pass.Type("VM")

	load := vm.Methods[0]
	assert.True(t, IsContext(load.Sig.Params().At(0).Type()))
	assert.True(t, IsErrorResult(load.Sig))
	assert.False(t, IsErrorResult(vm.Methods[1].Sig))

	assert.False(t, IsComparable(vm.Fields[0].Type))
	assert.True(t, IsComparable(vm.Fields[1].Type))
	assert.False(t, IsBool(vm.Fields[1].Type))
	assert.True(t, IsBool(types.Typ[types.Bool]))
}

func TestSupportsGeneration(t *testing.T) {
	// Test: the minimum language version gate, with unknown versions allowed
	tests := []struct {
		version string
		want    bool
	}{
		{"1.24", true},
		{"go1.21.3", true},
		{"1.18", true},
		{"1.17", false},
		{"go1.16", false},
		{"2.0", true},
		{"", true},      // unknown: assume current
		{"devel", true}, // unparseable: assume current
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, SupportsGeneration(tt.version))
		})
	}
}
