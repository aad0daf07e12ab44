package synth

import (
	"fmt"

	"github.com/mvvmgo/mvvmgen/internal/model"
	"github.com/mvvmgo/mvvmgen/internal/synth/writer"
)

// Command synthesizes the generated members for one command model: a nilable
// backing field plus an accessor that constructs the command on first use,
// and, when cancel pairing was requested, a second field/accessor pair.
func Command(info model.CommandInfo) *Unit {
	u := &Unit{
		Name:        fmt.Sprintf("%s.%s.g.go", info.TypeName, info.MethodName),
		Package:     info.Package,
		PackageName: info.PackageName,
		TypeName:    info.TypeName,
		Candidate:   fmt.Sprintf("%s.%s", info.TypeName, info.MethodName),
		Imports:     append([]string{relayImport}, info.ArgImports.Names()...),
	}

	commandType := commandTypeName(info)

	u.Members = append(u.Members,
		Member{Kind: MemberField, Text: fmt.Sprintf("%s %s", info.FieldName, commandType)},
		Member{Kind: MemberProperty, Text: commandProperty(info, commandType)},
	)

	if info.IncludeCancel {
		u.Members = append(u.Members,
			Member{Kind: MemberField, Text: fmt.Sprintf("%s *relay.Command", info.CancelFieldName())},
			Member{Kind: MemberProperty, Text: cancelProperty(info)},
		)
	}
	return u
}

// commandTypeName maps a kind onto the runtime command type, exhaustively.
func commandTypeName(info model.CommandInfo) string {
	switch info.Kind {
	case model.KindSync:
		return "*relay.Command"
	case model.KindSyncTyped:
		return fmt.Sprintf("*relay.TypedCommand[%s]", info.ArgType)
	case model.KindAsync, model.KindAsyncCancelable:
		return "*relay.AsyncCommand"
	case model.KindAsyncTyped, model.KindAsyncTypedCancelable:
		return fmt.Sprintf("*relay.TypedAsyncCommand[%s]", info.ArgType)
	}
	panic(fmt.Sprintf("synth: unknown command kind %d", info.Kind))
}

// constructorName maps (kind, gated) onto the runtime constructor,
// exhaustively.
func constructorName(kind model.CommandKind, gated bool) string {
	var base string
	switch kind {
	case model.KindSync:
		base = "NewCommand"
	case model.KindSyncTyped:
		base = "NewTypedCommand"
	case model.KindAsync:
		base = "NewAsyncCommand"
	case model.KindAsyncCancelable:
		base = "NewCancelableAsyncCommand"
	case model.KindAsyncTyped:
		base = "NewTypedAsyncCommand"
	case model.KindAsyncTypedCancelable:
		base = "NewCancelableTypedAsyncCommand"
	default:
		panic(fmt.Sprintf("synth: unknown command kind %d", kind))
	}
	if gated {
		base += "WithCanExecute"
	}
	return base
}

// canExecuteExpr renders the gate argument according to its classification,
// exhaustively over the non-none shapes.
func canExecuteExpr(info model.CommandInfo) string {
	switch info.CanExecute {
	case model.CanExecuteMethodRef:
		return fmt.Sprintf("v.%s", info.CanExecuteName)
	case model.CanExecuteMethodCall:
		return fmt.Sprintf("func(%s) bool { return v.%s() }", info.ArgType, info.CanExecuteName)
	case model.CanExecuteFieldRead:
		return fmt.Sprintf("func() bool { return v.%s }", info.CanExecuteName)
	case model.CanExecuteFieldReadTyped:
		return fmt.Sprintf("func(%s) bool { return v.%s }", info.ArgType, info.CanExecuteName)
	}
	panic(fmt.Sprintf("synth: unexpected CanExecute shape %d", info.CanExecute))
}

// optionsExpr renders the combined options argument, or "" when no switch is
// set. Both switches set combine into one bitwise-OR expression, never two
// arguments.
func optionsExpr(info model.CommandInfo) string {
	switch {
	case info.AllowConcurrent && info.FlowExceptions:
		return "relay.AllowConcurrentExecutions|relay.FlowExceptionsToScheduler"
	case info.AllowConcurrent:
		return "relay.AllowConcurrentExecutions"
	case info.FlowExceptions:
		return "relay.FlowExceptionsToScheduler"
	}
	return ""
}

func commandProperty(info model.CommandInfo, commandType string) string {
	args := []string{fmt.Sprintf("v.%s", info.MethodName)}
	if info.CanExecute != model.CanExecuteNone {
		args = append(args, canExecuteExpr(info))
	}
	if opts := optionsExpr(info); opts != "" {
		args = append(args, opts)
	}

	w := writer.NewWriter("\t")
	w.WriteComment(fmt.Sprintf("%s returns a command wrapping %s. The command is created on", info.PropertyName, info.MethodName))
	w.WriteComment("first access and cached on the view model.")
	w.WriteLinef("func (v *%s) %s() %s {", info.TypeName, info.PropertyName, commandType)
	w.Indent()
	w.WriteLinef("if v.%s == nil {", info.FieldName)
	w.Indent()
	w.Writef("v.%s = relay.%s(", info.FieldName, constructorName(info.Kind, info.CanExecute != model.CanExecuteNone))
	for i, a := range args {
		if i > 0 {
			w.Write(", ")
		}
		w.Write(a)
	}
	w.WriteLine(")")
	w.Dedent()
	w.WriteLine("}")
	w.WriteLinef("return v.%s", info.FieldName)
	w.Dedent()
	w.WriteLine("}")
	return w.String()
}

func cancelProperty(info model.CommandInfo) string {
	w := writer.NewWriter("\t")
	w.WriteComment(fmt.Sprintf("%s returns a command that cancels the in-flight execution", info.CancelPropertyName()))
	w.WriteComment(fmt.Sprintf("of %s.", info.PropertyName))
	w.WriteLinef("func (v *%s) %s() *relay.Command {", info.TypeName, info.CancelPropertyName())
	w.Indent()
	w.WriteLinef("if v.%s == nil {", info.CancelFieldName())
	w.Indent()
	w.WriteLinef("v.%s = relay.NewCancelCommand(v.%s())", info.CancelFieldName(), info.PropertyName)
	w.Dedent()
	w.WriteLine("}")
	w.WriteLinef("return v.%s", info.CancelFieldName())
	w.Dedent()
	w.WriteLine("}")
	return w.String()
}
