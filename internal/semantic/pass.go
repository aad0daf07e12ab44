// Package semantic answers structural questions about the analyzed source:
// which types exist, which declarations carry generator directives, what a
// member's type looks like fully qualified. It wraps go/ast and go/types and
// is the only package that touches them; everything downstream works on the
// views defined here, so tests can substitute passes built from in-memory
// sources.
package semantic

import (
	"go/ast"
	"go/token"
	"go/types"
	"sort"
)

// Pass is the symbol-level view of one package for one generator run.
type Pass struct {
	Fset      *token.FileSet
	Pkg       *types.Package
	Info      *types.Info
	GoVersion string
	// Dir is the package directory generated files are written to; empty
	// for passes built from in-memory sources.
	Dir   string
	Types []*TypeDecl

	byName map[string]*TypeDecl
}

// TypeDecl is one struct type declared in the package, with its fields and
// methods in declaration order.
type TypeDecl struct {
	Name    string
	Named   *types.Named
	Fields  []*FieldDecl
	Methods []*MethodDecl
}

// FieldDecl is one declared struct field.
type FieldDecl struct {
	Name     string
	Type     types.Type
	Pos      token.Position
	Embedded bool
	Markers  []*Marker
}

// MethodDecl is one method declared on a pointer or value receiver.
type MethodDecl struct {
	Name    string
	Sig     *types.Signature
	Pos     token.Position
	Markers []*Marker
}

// Type looks up a declared struct type by name.
func (p *Pass) Type(name string) (*TypeDecl, bool) {
	t, ok := p.byName[name]
	return t, ok
}

// BuildPass assembles a Pass from type-checked syntax. Types, fields, and
// methods are recorded in source-position order so every downstream decision
// that depends on declaration order is deterministic.
func BuildPass(fset *token.FileSet, files []*ast.File, pkg *types.Package, info *types.Info, goVersion string) *Pass {
	p := &Pass{
		Fset:      fset,
		Pkg:       pkg,
		Info:      info,
		GoVersion: goVersion,
		byName:    make(map[string]*TypeDecl),
	}

	// Structs first, then methods: a method may precede its receiver type
	// in file order.
	for _, file := range files {
		for _, decl := range file.Decls {
			d, ok := decl.(*ast.GenDecl)
			if !ok || d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					continue
				}
				p.addStruct(ts, st)
			}
		}
	}
	for _, file := range files {
		for _, decl := range file.Decls {
			if d, ok := decl.(*ast.FuncDecl); ok && d.Recv != nil && len(d.Recv.List) == 1 {
				p.addMethod(d)
			}
		}
	}

	sort.SliceStable(p.Types, func(i, j int) bool {
		return lessPosition(fset.Position(p.Types[i].Named.Obj().Pos()), fset.Position(p.Types[j].Named.Obj().Pos()))
	})
	for _, t := range p.Types {
		sort.SliceStable(t.Methods, func(i, j int) bool {
			return lessPosition(t.Methods[i].Pos, t.Methods[j].Pos)
		})
	}
	return p
}

// lessPosition orders positions by file name, then by offset within the file.
// Offsets from different files are not comparable.
func lessPosition(a, b token.Position) bool {
	if a.Filename != b.Filename {
		return a.Filename < b.Filename
	}
	return a.Offset < b.Offset
}

func (p *Pass) addStruct(ts *ast.TypeSpec, st *ast.StructType) {
	obj, ok := p.Info.Defs[ts.Name]
	if !ok {
		return
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return
	}
	td := &TypeDecl{Name: ts.Name.Name, Named: named}

	for _, f := range st.Fields.List {
		markers := fieldMarkers(f)
		ft := p.Info.TypeOf(f.Type)
		if len(f.Names) == 0 {
			// Embedded field: named after its type.
			td.Fields = append(td.Fields, &FieldDecl{
				Name:     embeddedName(ft),
				Type:     ft,
				Pos:      p.Fset.Position(f.Pos()),
				Embedded: true,
				Markers:  markers,
			})
			continue
		}
		for _, name := range f.Names {
			td.Fields = append(td.Fields, &FieldDecl{
				Name:    name.Name,
				Type:    ft,
				Pos:     p.Fset.Position(name.Pos()),
				Markers: markers,
			})
		}
	}

	p.Types = append(p.Types, td)
	p.byName[td.Name] = td
}

func (p *Pass) addMethod(d *ast.FuncDecl) {
	recv := d.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	// Generic receivers carry their type parameters in an index expression.
	switch r := recv.(type) {
	case *ast.IndexExpr:
		recv = r.X
	case *ast.IndexListExpr:
		recv = r.X
	}
	ident, ok := recv.(*ast.Ident)
	if !ok {
		return
	}
	td, ok := p.byName[ident.Name]
	if !ok {
		return
	}
	obj, ok := p.Info.Defs[d.Name]
	if !ok {
		return
	}
	sig, ok := obj.Type().(*types.Signature)
	if !ok {
		return
	}
	var markers []*Marker
	if d.Doc != nil {
		lines := make([]string, 0, len(d.Doc.List))
		for _, c := range d.Doc.List {
			lines = append(lines, c.Text)
		}
		markers = markersFromComments(lines)
	}
	td.Methods = append(td.Methods, &MethodDecl{
		Name:    d.Name.Name,
		Sig:     sig,
		Pos:     p.Fset.Position(d.Name.Pos()),
		Markers: markers,
	})
}

func fieldMarkers(f *ast.Field) []*Marker {
	var lines []string
	if f.Doc != nil {
		for _, c := range f.Doc.List {
			lines = append(lines, c.Text)
		}
	}
	if f.Comment != nil {
		for _, c := range f.Comment.List {
			lines = append(lines, c.Text)
		}
	}
	return markersFromComments(lines)
}

func embeddedName(t types.Type) string {
	if t == nil {
		return ""
	}
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if named, ok := t.(*types.Named); ok {
		return named.Obj().Name()
	}
	return types.TypeString(t, nil)
}
