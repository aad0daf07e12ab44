package synth

import (
	"fmt"

	"github.com/mvvmgo/mvvmgen/internal/model"
	"github.com/mvvmgo/mvvmgen/internal/synth/writer"
)

// Observable synthesizes the accessor pair for one observable-property
// model. The backing field already exists in source, so the unit contains
// only property members.
func Observable(info model.PropertyInfo) *Unit {
	u := &Unit{
		Name:        fmt.Sprintf("%s.%s.g.go", info.TypeName, info.FieldName),
		Package:     info.Package,
		PackageName: info.PackageName,
		TypeName:    info.TypeName,
		Candidate:   fmt.Sprintf("%s.%s", info.TypeName, info.FieldName),
		Imports:     info.FieldImports.Names(),
	}
	u.Members = append(u.Members,
		Member{Kind: MemberProperty, Text: getter(info)},
		Member{Kind: MemberProperty, Text: setter(info)},
	)
	return u
}

func getter(info model.PropertyInfo) string {
	w := writer.NewWriter("\t")
	w.WriteComment(fmt.Sprintf("%s returns the current value of the %s property.", info.PropertyName, info.PropertyName))
	w.WriteLinef("func (v *%s) %s() %s {", info.TypeName, info.PropertyName, info.FieldType)
	w.Indent()
	w.WriteLinef("return v.%s", info.FieldName)
	w.Dedent()
	w.WriteLine("}")
	return w.String()
}

func setter(info model.PropertyInfo) string {
	w := writer.NewWriter("\t")
	w.WriteComment(fmt.Sprintf("Set%s updates %s and raises change notifications.", info.PropertyName, info.PropertyName))
	w.WriteLinef("func (v *%s) Set%s(value %s) {", info.TypeName, info.PropertyName, info.FieldType)
	w.Indent()
	if info.Comparable {
		w.WriteLinef("if v.%s == value {", info.FieldName)
		w.Indent()
		w.WriteLine("return")
		w.Dedent()
		w.WriteLine("}")
	}
	w.WriteLinef("v.%s = value", info.FieldName)
	w.WriteLinef("v.RaisePropertyChanged(%q)", info.PropertyName)
	for _, name := range info.NotifyAlso.Names() {
		w.WriteLinef("v.RaisePropertyChanged(%q)", name)
	}
	for _, name := range info.NotifyCommands.Names() {
		w.WriteLinef("v.%s().NotifyCanExecuteChanged()", name)
	}
	w.Dedent()
	w.WriteLine("}")
	return w.String()
}
