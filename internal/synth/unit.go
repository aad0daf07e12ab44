// Package synth maps validated model values to generated source members.
// Every function here is a pure function of its Info argument: symbols are
// never re-inspected, nothing can fail, and equal Infos always produce
// byte-identical output.
package synth

// relayImport is the import path of the runtime command package referenced
// by generated code.
const relayImport = "github.com/mvvmgo/mvvmgen/relay"

// MemberKind distinguishes the two member shapes synthesis can emit.
type MemberKind uint8

const (
	// MemberField is a backing-field declaration destined for the
	// containing type's generated state struct.
	MemberField MemberKind = iota
	// MemberProperty is an accessor method on the containing type.
	MemberProperty
)

// Member is one synthesized declaration.
type Member struct {
	Kind MemberKind
	Text string
}

// Unit is the complete generated output for one candidate: an ordered member
// list plus the deterministic output name it is attached under.
type Unit struct {
	// Name is the output identifier, "{Type}.{Member}.g.go".
	Name string
	// Package and PackageName locate the destination package.
	Package     string
	PackageName string
	// TypeName is the containing type; the attach layer groups field
	// members by it.
	TypeName string
	// Candidate labels the originating declaration for collision reporting.
	Candidate string
	// Imports lists the import paths the members require.
	Imports []string
	// Members in emission order.
	Members []Member
}

// Fields returns the members destined for the state struct.
func (u *Unit) Fields() []Member {
	return u.filter(MemberField)
}

// Properties returns the accessor members.
func (u *Unit) Properties() []Member {
	return u.filter(MemberProperty)
}

func (u *Unit) filter(kind MemberKind) []Member {
	var out []Member
	for _, m := range u.Members {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}
