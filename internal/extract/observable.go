package extract

import (
	"fmt"
	"strings"

	"github.com/mvvmgo/mvvmgen/internal/diagnostics"
	"github.com/mvvmgo/mvvmgen/internal/model"
	"github.com/mvvmgo/mvvmgen/internal/semantic"
)

// Observable extracts the PropertyInfo for one marked struct field.
func Observable(pass *semantic.Pass, td *semantic.TypeDecl, field *semantic.FieldDecl, marker *semantic.Marker, bag *diagnostics.Bag) (model.PropertyInfo, bool) {
	label := fmt.Sprintf("%s.%s", td.Name, field.Name)

	propertyName := GeneratedPropertyName(field.Name)
	if propertyName == "" || propertyName == field.Name {
		// The accessor would collide with the field itself.
		bag.Add(diagnostics.New(diagnostics.PropertyNameCollision, field.Pos, label, label, propertyName))
		return model.PropertyInfo{}, false
	}

	if !checkUniqueProperty(pass, td, field, propertyName, bag, label) {
		return model.PropertyInfo{}, false
	}

	info := model.PropertyInfo{
		Package:      pass.Pkg.Path(),
		PackageName:  pass.Pkg.Name(),
		TypeName:     td.Name,
		FieldName:    field.Name,
		PropertyName: propertyName,
		Comparable:   semantic.IsComparable(field.Type),
	}
	rendered, imports := semantic.RenderType(field.Type, pass.Pkg)
	info.FieldType = rendered
	info.FieldImports = model.JoinNames(imports)

	if notify, ok := marker.Arg(argNotify); ok {
		names := splitNames(notify)
		kept := names[:0]
		for _, n := range names {
			if n == propertyName {
				// Not fatal: the property always notifies for itself.
				bag.Add(diagnostics.New(diagnostics.RedundantSelfNotification, field.Pos, label, label, propertyName))
				continue
			}
			kept = append(kept, n)
		}
		info.NotifyAlso = model.JoinNames(kept)
	}

	if commands, ok := marker.Arg(argNotifyCommands); ok {
		names := splitNames(commands)
		for _, n := range names {
			if !strings.HasSuffix(n, "Command") {
				bag.Add(diagnostics.New(diagnostics.InvalidNotifyCommandTarget, field.Pos, label, label, n))
				return model.PropertyInfo{}, false
			}
		}
		info.NotifyCommands = model.JoinNames(names)
	}

	return info, true
}

// checkUniqueProperty mirrors the command uniqueness rules for observable
// fields: members promoted from embedded types win unconditionally, and
// within the type the first marked field in declaration order is canonical.
// It also rejects accessor names already taken by an existing member.
func checkUniqueProperty(pass *semantic.Pass, td *semantic.TypeDecl, field *semantic.FieldDecl, propertyName string, bag *diagnostics.Bag, label string) bool {
	for _, m := range pass.AllMembers(td) {
		if m.Name == propertyName && m.Field != field {
			bag.Add(diagnostics.New(diagnostics.PropertyNameCollision, field.Pos, label, label, propertyName))
			return false
		}
		if m.Depth > 0 && m.Field != nil && !m.Field.Embedded {
			if _, ok := semantic.FindMarker(m.Field.Markers, MarkerObservable); ok &&
				GeneratedPropertyName(m.Field.Name) == propertyName {
				bag.Add(diagnostics.New(diagnostics.CommandShadowsEmbeddedCommand, field.Pos, label, label, propertyName))
				return false
			}
		}
	}

	for _, sibling := range td.Fields {
		if sibling == field {
			break
		}
		if sibling.Embedded {
			continue
		}
		if _, ok := semantic.FindMarker(sibling.Markers, MarkerObservable); !ok {
			continue
		}
		if GeneratedPropertyName(sibling.Name) == propertyName {
			bag.Add(diagnostics.New(diagnostics.DuplicateGeneratedMember, field.Pos, label, label, propertyName))
			return false
		}
	}
	return true
}

func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
