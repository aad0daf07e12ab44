package model

// CommandKind classifies the supported command shapes. The set is closed:
// synthesis switches over every variant and treats anything else as a
// programming error, so extraction is the only place a kind is ever chosen.
type CommandKind uint8

const (
	// KindSync is a parameterless method with no results.
	KindSync CommandKind = iota
	// KindSyncTyped is a single-value-parameter method with no results.
	KindSyncTyped
	// KindAsync is a parameterless method returning error.
	KindAsync
	// KindAsyncCancelable is a context-only method returning error.
	KindAsyncCancelable
	// KindAsyncTyped is a single-value-parameter method returning error.
	KindAsyncTyped
	// KindAsyncTypedCancelable takes a context and a value and returns error.
	KindAsyncTypedCancelable
)

func (k CommandKind) String() string {
	switch k {
	case KindSync:
		return "sync"
	case KindSyncTyped:
		return "sync[T]"
	case KindAsync:
		return "async"
	case KindAsyncCancelable:
		return "async+cancel"
	case KindAsyncTyped:
		return "async[T]"
	case KindAsyncTypedCancelable:
		return "async[T]+cancel"
	}
	return "unknown"
}

// IsAsync reports whether the kind wraps an error-returning method.
func (k CommandKind) IsAsync() bool {
	return k >= KindAsync
}

// IsTyped reports whether the generated command carries a value argument.
func (k CommandKind) IsTyped() bool {
	return k == KindSyncTyped || k == KindAsyncTyped || k == KindAsyncTypedCancelable
}

// SupportsCancellation reports whether the wrapped method accepts a context.
func (k CommandKind) SupportsCancellation() bool {
	return k == KindAsyncCancelable || k == KindAsyncTypedCancelable
}

// CanExecuteShape classifies how a resolved CanExecute gate is invoked by the
// generated property. Chosen once at extraction time; synthesis never
// re-inspects the gate symbol.
type CanExecuteShape uint8

const (
	// CanExecuteNone means no gate was requested.
	CanExecuteNone CanExecuteShape = iota
	// CanExecuteMethodRef passes the gate method value directly.
	CanExecuteMethodRef
	// CanExecuteMethodCall wraps a parameterless gate method in a closure
	// that discards the command argument of a typed command.
	CanExecuteMethodCall
	// CanExecuteFieldRead wraps a bool field in a parameterless closure.
	CanExecuteFieldRead
	// CanExecuteFieldReadTyped wraps a bool field in a closure that discards
	// the command argument of a typed command.
	CanExecuteFieldReadTyped
)

func (s CanExecuteShape) String() string {
	switch s {
	case CanExecuteNone:
		return "none"
	case CanExecuteMethodRef:
		return "method-ref"
	case CanExecuteMethodCall:
		return "method-call"
	case CanExecuteFieldRead:
		return "field-read"
	case CanExecuteFieldReadTyped:
		return "field-read-typed"
	}
	return "unknown"
}
