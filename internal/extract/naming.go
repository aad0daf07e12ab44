package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CommandPropertyName derives the generated accessor name for a command
// method:
//
//   - a leading "On" is stripped only when the remainder does not start with
//     a lower-case rune, so "OnSave" becomes "Save" but "Onboard" stays;
//   - a trailing "Async" is stripped only when the method has the
//     asynchronous (error-returning) shape;
//   - "Command" is appended.
func CommandPropertyName(methodName string, isAsync bool) string {
	name := methodName
	if strings.HasPrefix(name, "On") && len(name) > len("On") {
		r, _ := utf8.DecodeRuneInString(name[len("On"):])
		if !unicode.IsLower(r) {
			name = name[len("On"):]
		}
	}
	if isAsync && strings.HasSuffix(name, "Async") && len(name) > len("Async") {
		name = name[:len(name)-len("Async")]
	}
	return name + "Command"
}

// CommandFieldName derives the backing-field name from the accessor name.
// When the first rune has a distinct lower-case form the field is the
// accessor name with that rune lowered; otherwise the accessor name is
// prefixed with an underscore. The two branches are intentionally different:
// identifiers in scripts without letter case keep their spelling intact.
func CommandFieldName(propertyName string) string {
	r, size := utf8.DecodeRuneInString(propertyName)
	lower := unicode.ToLower(r)
	if lower == r {
		return "_" + propertyName
	}
	return string(lower) + propertyName[size:]
}

// GeneratedPropertyName predicts the accessor name the observable-property
// generator assigns to a backing field: an "m_" or "_" prefix is stripped
// and the first rune is upper-cased. The command generator uses this as its
// naming oracle when a CanExecute target refers to a property that will only
// exist after generation.
func GeneratedPropertyName(fieldName string) string {
	name := fieldName
	if strings.HasPrefix(name, "m_") {
		name = name[len("m_"):]
	} else if strings.HasPrefix(name, "_") {
		name = name[len("_"):]
	}
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
