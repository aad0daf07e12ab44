package semantic

import (
	"go/types"
)

// Member is one field or method visible on a type, either declared directly
// (Depth 0) or promoted from an embedded type (Depth > 0). Exactly one of
// Method and Field is set.
type Member struct {
	Name   string
	Depth  int
	Method *MethodDecl
	Field  *FieldDecl
}

// AllMembers enumerates every field and method of t, including members
// promoted from embedded types, in derived-to-embedded order and declaration
// order within each level. Shadowed members are still listed; callers that
// care about ambiguity want to see every match.
func (p *Pass) AllMembers(t *TypeDecl) []Member {
	visited := make(map[*types.Named]bool)
	return p.collectMembers(t, 0, visited)
}

// MembersNamed filters AllMembers by name.
func (p *Pass) MembersNamed(t *TypeDecl, name string) []Member {
	var out []Member
	for _, m := range p.AllMembers(t) {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}

func (p *Pass) collectMembers(t *TypeDecl, depth int, visited map[*types.Named]bool) []Member {
	if visited[t.Named] {
		return nil
	}
	visited[t.Named] = true

	var out []Member
	for _, f := range t.Fields {
		if !f.Embedded {
			out = append(out, Member{Name: f.Name, Depth: depth, Field: f})
		}
	}
	for _, m := range t.Methods {
		out = append(out, Member{Name: m.Name, Depth: depth, Method: m})
	}

	// Promoted members from embedded types, after the level's own.
	for _, f := range t.Fields {
		if !f.Embedded {
			continue
		}
		out = append(out, p.embeddedMembers(f.Type, depth+1, visited)...)
	}
	return out
}

func (p *Pass) embeddedMembers(t types.Type, depth int, visited map[*types.Named]bool) []Member {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	// Same-package types go through their TypeDecl so directive markers on
	// their members stay visible.
	if named.Obj().Pkg() == p.Pkg {
		if td, ok := p.byName[named.Obj().Name()]; ok {
			return p.collectMembers(td, depth, visited)
		}
	}

	if visited[named] {
		return nil
	}
	visited[named] = true

	// Foreign types: fall back to the type checker's view. Directive
	// markers do not survive export data, so these members carry none.
	var out []Member
	if st, ok := named.Underlying().(*types.Struct); ok {
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if f.Embedded() {
				continue
			}
			out = append(out, Member{
				Name:  f.Name(),
				Depth: depth,
				Field: &FieldDecl{Name: f.Name(), Type: f.Type()},
			})
		}
	}
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		sig, ok := m.Type().(*types.Signature)
		if !ok {
			continue
		}
		out = append(out, Member{
			Name:   m.Name(),
			Depth:  depth,
			Method: &MethodDecl{Name: m.Name(), Sig: sig},
		})
	}
	if st, ok := named.Underlying().(*types.Struct); ok {
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if f.Embedded() {
				out = append(out, p.embeddedMembers(f.Type(), depth+1, visited)...)
			}
		}
	}
	return out
}
