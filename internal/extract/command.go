// Package extract turns marked declarations into model values, validating
// every precondition along the way. Extraction is pure: given the same pass
// it always produces the same Info values and the same diagnostics, and a
// failed candidate never affects its siblings.
package extract

import (
	"fmt"
	"go/types"

	"github.com/mvvmgo/mvvmgen/internal/diagnostics"
	"github.com/mvvmgo/mvvmgen/internal/model"
	"github.com/mvvmgo/mvvmgen/internal/semantic"
)

// Directive and argument names recognized on candidates.
const (
	MarkerCommand    = "command"
	MarkerObservable = "observable"

	flagAllowConcurrent = "allowConcurrent"
	flagFlowExceptions  = "flowExceptions"
	flagIncludeCancel   = "includeCancel"
	argCanExecute       = "canExecute"

	argNotify         = "notify"
	argNotifyCommands = "notifyCommands"
)

// Command extracts the CommandInfo for one marked method, or reports why it
// cannot. Diagnostics go to the candidate's own bag; the bool result is
// false when any error-severity rule failed.
func Command(pass *semantic.Pass, td *semantic.TypeDecl, method *semantic.MethodDecl, marker *semantic.Marker, bag *diagnostics.Bag) (model.CommandInfo, bool) {
	label := fmt.Sprintf("%s.%s", td.Name, method.Name)

	kind, argType, ok := classifySignature(method.Sig)
	if !ok {
		bag.Add(diagnostics.New(diagnostics.InvalidCommandSignature, method.Pos, label, label))
		return model.CommandInfo{}, false
	}

	propertyName := CommandPropertyName(method.Name, kind.IsAsync())
	fieldName := CommandFieldName(propertyName)

	if !checkUniqueCommand(pass, td, method, propertyName, bag) {
		return model.CommandInfo{}, false
	}

	// The option switches are validated independently so a candidate that
	// misuses several reports all of them at once.
	optionsOK := true
	if marker.Flag(flagAllowConcurrent) && !kind.IsAsync() {
		bag.Add(diagnostics.New(diagnostics.ConcurrencyOnSyncCommand, method.Pos, label, label))
		optionsOK = false
	}
	if marker.Flag(flagFlowExceptions) && !kind.IsAsync() {
		bag.Add(diagnostics.New(diagnostics.ExceptionFlowOnSyncCommand, method.Pos, label, label))
		optionsOK = false
	}
	if marker.Flag(flagIncludeCancel) && !kind.SupportsCancellation() {
		bag.Add(diagnostics.New(diagnostics.CancelCommandWithoutCancellation, method.Pos, label, label))
		optionsOK = false
	}
	if !optionsOK {
		return model.CommandInfo{}, false
	}

	info := model.CommandInfo{
		Package:         pass.Pkg.Path(),
		PackageName:     pass.Pkg.Name(),
		TypeName:        td.Name,
		MethodName:      method.Name,
		PropertyName:    propertyName,
		FieldName:       fieldName,
		Kind:            kind,
		AllowConcurrent: marker.Flag(flagAllowConcurrent),
		FlowExceptions:  marker.Flag(flagFlowExceptions),
		IncludeCancel:   marker.Flag(flagIncludeCancel),
	}
	if argType != nil {
		rendered, imports := semantic.RenderType(argType, pass.Pkg)
		info.ArgType = rendered
		info.ArgImports = model.JoinNames(imports)
	}

	if gate, gateOK := marker.Arg(argCanExecute); gateOK {
		shape, name, resolved := resolveCanExecute(pass, td, method, gate, kind, argType, label, bag)
		if !resolved {
			return model.CommandInfo{}, false
		}
		info.CanExecute = shape
		info.CanExecuteName = name
	}

	return info, true
}

// classifySignature maps a method signature onto the supported command
// shapes. The second result is the command argument type for typed kinds.
func classifySignature(sig *types.Signature) (model.CommandKind, types.Type, bool) {
	isAsync := false
	switch sig.Results().Len() {
	case 0:
	case 1:
		if !semantic.IsErrorResult(sig) {
			return 0, nil, false
		}
		isAsync = true
	default:
		return 0, nil, false
	}

	if sig.Variadic() {
		return 0, nil, false
	}
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if disqualifiedParam(params.At(i).Type()) {
			return 0, nil, false
		}
	}

	switch params.Len() {
	case 0:
		if isAsync {
			return model.KindAsync, nil, true
		}
		return model.KindSync, nil, true
	case 1:
		p := params.At(0).Type()
		if isAsync && semantic.IsContext(p) {
			return model.KindAsyncCancelable, nil, true
		}
		if isAsync {
			return model.KindAsyncTyped, p, true
		}
		return model.KindSyncTyped, p, true
	case 2:
		if !isAsync {
			return 0, nil, false
		}
		if !semantic.IsContext(params.At(0).Type()) {
			return 0, nil, false
		}
		p := params.At(1).Type()
		if semantic.IsContext(p) {
			return 0, nil, false
		}
		return model.KindAsyncTypedCancelable, p, true
	default:
		return 0, nil, false
	}
}

// disqualifiedParam reports parameter types that no generated wrapper can
// carry, independent of arity.
func disqualifiedParam(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Signature, *types.Chan:
		return true
	case *types.Basic:
		return u.Kind() == types.UnsafePointer || u.Kind() == types.Uintptr
	}
	return false
}
