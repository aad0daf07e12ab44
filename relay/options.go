// Package relay provides the runtime command types that generated code
// constructs: synchronous and asynchronous commands, optionally typed over a
// command argument, with CanExecute gating and change notification.
package relay

// Options are behavior flags for asynchronous commands. They combine with
// bitwise OR.
type Options uint8

const (
	// AllowConcurrentExecutions lets Execute start while a previous
	// execution is still running; by default a running command reports
	// CanExecute false until it finishes.
	AllowConcurrentExecutions Options = 1 << iota
	// FlowExceptionsToScheduler forwards execution errors to the
	// process-wide handler instead of retaining them on the command.
	FlowExceptionsToScheduler
)

// UnhandledError receives errors from commands created with
// FlowExceptionsToScheduler. The default discards them.
var UnhandledError = func(error) {}

func combine(opts []Options) Options {
	var o Options
	for _, opt := range opts {
		o |= opt
	}
	return o
}
