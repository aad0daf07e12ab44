package semantic

import (
	"strings"
)

// markerPrefix is the namespace all generator directives live under.
const markerPrefix = "//mvvm:"

// Marker is the parsed argument data of one generator directive, e.g.
//
//	//mvvm:command allowConcurrent canExecute=CanSave
//
// Bare words are flags; key=value pairs are named arguments. Lookup is by
// name and yields the value or "absent", mirroring attribute-argument access
// on the original platform.
type Marker struct {
	Name  string
	flags map[string]bool
	args  map[string]string
}

// Flag reports whether the bare flag was supplied.
func (m *Marker) Flag(name string) bool {
	return m.flags[name]
}

// Arg returns the named argument value and whether it was supplied.
func (m *Marker) Arg(name string) (string, bool) {
	v, ok := m.args[name]
	return v, ok
}

// ParseMarker parses a single comment line into a Marker, or returns false
// when the line is not a generator directive. Directives must start at the
// beginning of the comment with no space after "//".
func ParseMarker(comment string) (*Marker, bool) {
	if !strings.HasPrefix(comment, markerPrefix) {
		return nil, false
	}
	rest := strings.TrimPrefix(comment, markerPrefix)
	parts := strings.Fields(rest)
	if len(parts) == 0 {
		return nil, false
	}
	m := &Marker{
		Name:  parts[0],
		flags: make(map[string]bool),
		args:  make(map[string]string),
	}
	for _, p := range parts[1:] {
		if k, v, ok := strings.Cut(p, "="); ok {
			m.args[k] = v
		} else {
			m.flags[p] = true
		}
	}
	return m, true
}

// markersFromComments collects all directives from a comment block.
func markersFromComments(lines []string) []*Marker {
	var out []*Marker
	for _, line := range lines {
		if m, ok := ParseMarker(line); ok {
			out = append(out, m)
		}
	}
	return out
}

// FindMarker returns the first directive with the given name, if any.
func FindMarker(markers []*Marker, name string) (*Marker, bool) {
	for _, m := range markers {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}
