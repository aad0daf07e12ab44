package diagnostics

// Descriptor is the immutable definition of one diagnostic rule: a stable
// identifier, a severity, and a message template. The full catalog is plain
// configuration data; rules reference descriptors by name, never by ID string.
type Descriptor struct {
	ID       string
	Severity Severity
	Title    string
	Message  string // fmt template, formatted once at creation time
}

// The diagnostic catalog. IDs are stable and must never be reused for a
// different rule once published.
var (
	InvalidCommandSignature = Descriptor{
		ID:       "MVVM0001",
		Severity: SeverityError,
		Title:    "Invalid command method signature",
		Message:  "cannot generate a command for %s: the method signature matches none of the supported shapes (no parameters or a single value parameter, optionally with a context.Context, returning nothing or error)",
	}

	ConcurrencyOnSyncCommand = Descriptor{
		ID:       "MVVM0002",
		Severity: SeverityError,
		Title:    "allowConcurrent on a synchronous command",
		Message:  "option allowConcurrent on %s is only valid for asynchronous (error-returning) command methods",
	}

	ExceptionFlowOnSyncCommand = Descriptor{
		ID:       "MVVM0003",
		Severity: SeverityError,
		Title:    "flowExceptions on a synchronous command",
		Message:  "option flowExceptions on %s is only valid for asynchronous (error-returning) command methods",
	}

	CancelCommandWithoutCancellation = Descriptor{
		ID:       "MVVM0004",
		Severity: SeverityError,
		Title:    "includeCancel without a cancellation parameter",
		Message:  "option includeCancel on %s requires the method to accept a context.Context parameter",
	}

	CanExecuteMemberNotFound = Descriptor{
		ID:       "MVVM0005",
		Severity: SeverityError,
		Title:    "CanExecute member not found",
		Message:  "no member named %q was found on %s to use as the CanExecute gate for %s",
	}

	CanExecuteMemberAmbiguous = Descriptor{
		ID:       "MVVM0006",
		Severity: SeverityError,
		Title:    "CanExecute member ambiguous",
		Message:  "multiple members named %q were found on %s; the CanExecute gate for %s must resolve to exactly one member",
	}

	CanExecuteMemberInvalid = Descriptor{
		ID:       "MVVM0007",
		Severity: SeverityError,
		Title:    "CanExecute member has an invalid shape",
		Message:  "member %q on %s cannot gate %s: it must be a parameterless bool method, a bool method taking the command argument type, or a bool field",
	}

	UnsupportedGoVersion = Descriptor{
		ID:       "MVVM0008",
		Severity: SeverityError,
		Title:    "Unsupported Go language version",
		Message:  "package %s targets Go %s; command generation requires at least Go %s",
	}

	CommandShadowsEmbeddedCommand = Descriptor{
		ID:       "MVVM0009",
		Severity: SeverityError,
		Title:    "Command shadows an embedded command",
		Message:  "%s would generate %q, which is already generated for a member promoted from an embedded type",
	}

	DuplicateGeneratedMember = Descriptor{
		ID:       "MVVM0010",
		Severity: SeverityError,
		Title:    "Duplicate generated member name",
		Message:  "%s would generate %q, which is already generated for an earlier member of the same type",
	}

	PropertyNameCollision = Descriptor{
		ID:       "MVVM0011",
		Severity: SeverityError,
		Title:    "Generated property collides with an existing member",
		Message:  "field %s would generate property %q, which collides with an existing member of the type",
	}

	RedundantSelfNotification = Descriptor{
		ID:       "MVVM0012",
		Severity: SeverityWarning,
		Title:    "Redundant self notification",
		Message:  "field %s lists its own property %q in notify=; the property always notifies for itself",
	}

	InvalidNotifyCommandTarget = Descriptor{
		ID:       "MVVM0013",
		Severity: SeverityError,
		Title:    "Invalid notifyCommands target",
		Message:  "field %s lists %q in notifyCommands=, which is not a generated command property name (must end in \"Command\")",
	}

	OutputNameCollision = Descriptor{
		ID:       "MVVM0014",
		Severity: SeverityWarning,
		Title:    "Generated output name collision",
		Message:  "candidates %s and %s both produce output %q; the later one wins",
	}
)
