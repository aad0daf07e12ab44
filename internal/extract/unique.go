package extract

import (
	"github.com/mvvmgo/mvvmgen/internal/diagnostics"
	"github.com/mvvmgo/mvvmgen/internal/semantic"
)

// checkUniqueCommand enforces that the derived accessor name is generated
// exactly once per type. Any marked member promoted from an embedded type
// that derives the same name fails the outer candidate unconditionally, so
// the embedded declaration always wins without needing a traversal order.
// Within the type itself the first marked method in declaration order is
// canonical; later ones fail.
func checkUniqueCommand(pass *semantic.Pass, td *semantic.TypeDecl, method *semantic.MethodDecl, propertyName string, bag *diagnostics.Bag) bool {
	label := td.Name + "." + method.Name

	for _, m := range pass.AllMembers(td) {
		if m.Depth == 0 || m.Method == nil {
			continue
		}
		if _, ok := semantic.FindMarker(m.Method.Markers, MarkerCommand); !ok {
			continue
		}
		if derivedPropertyName(m.Method) == propertyName {
			bag.Add(diagnostics.New(diagnostics.CommandShadowsEmbeddedCommand, method.Pos, label, label, propertyName))
			return false
		}
	}

	for _, sibling := range td.Methods {
		if sibling == method {
			break
		}
		if _, ok := semantic.FindMarker(sibling.Markers, MarkerCommand); !ok {
			continue
		}
		if derivedPropertyName(sibling) == propertyName {
			bag.Add(diagnostics.New(diagnostics.DuplicateGeneratedMember, method.Pos, label, label, propertyName))
			return false
		}
	}
	return true
}

// derivedPropertyName derives the accessor name another marked method would
// produce, without running its full extraction.
func derivedPropertyName(m *semantic.MethodDecl) string {
	return CommandPropertyName(m.Name, semantic.IsErrorResult(m.Sig))
}
