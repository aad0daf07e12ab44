// Package model defines the immutable extraction results handed from the
// analysis side of the generator to the synthesis side. Every Info type is a
// plain comparable struct: two Infos with equal fields are the same Info, no
// matter which type-checker pass produced them. That value identity is the
// cache key for incremental generation, so Infos must never contain slices,
// maps, pointers, or anything else with reference identity.
package model

// CommandInfo describes one command to generate from a marked method.
type CommandInfo struct {
	// Package is the import path of the package containing the view model.
	Package string
	// PackageName is the package identifier generated files declare.
	PackageName string
	// TypeName is the name of the containing struct type.
	TypeName string
	// MethodName is the wrapped method's name as declared.
	MethodName string
	// PropertyName is the derived accessor name, always ending in "Command".
	PropertyName string
	// FieldName is the derived backing-field name.
	FieldName string

	Kind CommandKind
	// ArgType is the rendered type of the command argument; empty unless
	// Kind.IsTyped().
	ArgType string
	// ArgImports lists the import paths ArgType's spelling requires.
	ArgImports NameList

	AllowConcurrent bool
	FlowExceptions  bool
	IncludeCancel   bool

	CanExecute     CanExecuteShape
	CanExecuteName string
}

// CancelPropertyName returns the paired cancel-command accessor name. The
// derivation guarantees PropertyName ends in "Command", so plain suffix
// replacement is safe.
func (c CommandInfo) CancelPropertyName() string {
	return c.PropertyName[:len(c.PropertyName)-len("Command")] + "CancelCommand"
}

// CancelFieldName returns the paired cancel-command backing-field name.
func (c CommandInfo) CancelFieldName() string {
	return c.FieldName[:len(c.FieldName)-len("Command")] + "CancelCommand"
}
