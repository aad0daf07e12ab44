package diagnostics

import (
	"fmt"
	"go/token"
)

// Diagnostic is one reported finding: a descriptor, the message formatted at
// creation time, and the source location of the offending declaration.
// Diagnostics are immutable once created.
type Diagnostic struct {
	Descriptor Descriptor
	Message    string
	Pos        token.Position
	Symbol     string
}

// New formats a diagnostic for the given descriptor. The argument list must
// match the descriptor's message template.
func New(d Descriptor, pos token.Position, symbol string, args ...any) Diagnostic {
	return Diagnostic{
		Descriptor: d,
		Message:    fmt.Sprintf(d.Message, args...),
		Pos:        pos,
		Symbol:     symbol,
	}
}

func (d Diagnostic) String() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s [%s] %s", d.Pos, d.Descriptor.Severity, d.Descriptor.ID, d.Message)
	}
	return fmt.Sprintf("%s [%s] %s", d.Descriptor.Severity, d.Descriptor.ID, d.Message)
}
