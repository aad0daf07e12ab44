package extract

import (
	"go/types"

	"github.com/mvvmgo/mvvmgen/internal/diagnostics"
	"github.com/mvvmgo/mvvmgen/internal/model"
	"github.com/mvvmgo/mvvmgen/internal/semantic"
)

// resolveCanExecute resolves the named gate member on the containing type,
// including members promoted from embedded types, and classifies how the
// generated property will invoke it. When no member matches, fields whose
// observable-generated property name equals the target are considered: the
// gate may refer to a property that only exists after generation.
func resolveCanExecute(pass *semantic.Pass, td *semantic.TypeDecl, method *semantic.MethodDecl, target string, kind model.CommandKind, argType types.Type, label string, bag *diagnostics.Bag) (model.CanExecuteShape, string, bool) {
	matches := pass.MembersNamed(td, target)

	if len(matches) == 0 {
		matches = generatedPropertyFallback(pass, td, target)
	}

	switch {
	case len(matches) == 0:
		bag.Add(diagnostics.New(diagnostics.CanExecuteMemberNotFound, method.Pos, label, target, td.Name, label))
		return model.CanExecuteNone, "", false
	case len(matches) > 1:
		bag.Add(diagnostics.New(diagnostics.CanExecuteMemberAmbiguous, method.Pos, label, target, td.Name, label))
		return model.CanExecuteNone, "", false
	}

	m := matches[0]
	switch {
	case m.Method != nil:
		sig := m.Method.Sig
		if !boolResult(sig) {
			break
		}
		switch sig.Params().Len() {
		case 0:
			if kind.IsTyped() {
				return model.CanExecuteMethodCall, target, true
			}
			return model.CanExecuteMethodRef, target, true
		case 1:
			if kind.IsTyped() && argType != nil && types.Identical(sig.Params().At(0).Type(), argType) {
				return model.CanExecuteMethodRef, target, true
			}
		}

	case m.Field != nil:
		if _, isObservable := semantic.FindMarker(m.Field.Markers, MarkerObservable); isObservable && m.Field.Name != target {
			// Matched through the naming oracle: the generated accessor is
			// a parameterless bool method.
			if !semantic.IsBool(m.Field.Type) {
				break
			}
			if kind.IsTyped() {
				return model.CanExecuteMethodCall, target, true
			}
			return model.CanExecuteMethodRef, target, true
		}
		if !semantic.IsBool(m.Field.Type) {
			break
		}
		if kind.IsTyped() {
			return model.CanExecuteFieldReadTyped, target, true
		}
		return model.CanExecuteFieldRead, target, true
	}

	bag.Add(diagnostics.New(diagnostics.CanExecuteMemberInvalid, method.Pos, label, target, td.Name, label))
	return model.CanExecuteNone, "", false
}

// generatedPropertyFallback finds fields whose observable-generated property
// name equals target.
func generatedPropertyFallback(pass *semantic.Pass, td *semantic.TypeDecl, target string) []semantic.Member {
	var out []semantic.Member
	for _, m := range pass.AllMembers(td) {
		if m.Field == nil || m.Field.Embedded {
			continue
		}
		if _, ok := semantic.FindMarker(m.Field.Markers, MarkerObservable); !ok {
			continue
		}
		if GeneratedPropertyName(m.Field.Name) == target {
			out = append(out, m)
		}
	}
	return out
}

func boolResult(sig *types.Signature) bool {
	return sig.Results().Len() == 1 && semantic.IsBool(sig.Results().At(0).Type())
}
