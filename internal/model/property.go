package model

import "strings"

// NameList is a comparable encoding of an ordered list of member names.
// Infos must stay comparable structs, so lists are carried as a single
// comma-joined string rather than a slice.
type NameList string

// JoinNames encodes a list of names.
func JoinNames(names []string) NameList {
	return NameList(strings.Join(names, ","))
}

// Names decodes the list. An empty NameList decodes to nil.
func (l NameList) Names() []string {
	if l == "" {
		return nil
	}
	return strings.Split(string(l), ",")
}

// PropertyInfo describes one observable property to generate from a marked
// struct field.
type PropertyInfo struct {
	Package     string
	PackageName string
	TypeName    string
	FieldName   string
	// PropertyName is the derived getter name; the setter is "Set" + it.
	PropertyName string
	// FieldType is the rendered type of the backing field.
	FieldType string
	// FieldImports lists the import paths FieldType's spelling requires.
	FieldImports NameList
	// Comparable controls whether the setter guards with == before assigning.
	Comparable bool

	// NotifyAlso lists additional property names to raise change
	// notifications for after the property's own.
	NotifyAlso NameList
	// NotifyCommands lists generated command accessors whose CanExecute
	// state must be re-evaluated after the change.
	NotifyCommands NameList
}
