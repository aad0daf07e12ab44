package relay

// Command wraps a synchronous parameterless method.
type Command struct {
	notifier
	execute    func()
	canExecute func() bool
}

// NewCommand creates an ungated synchronous command.
func NewCommand(execute func()) *Command {
	return &Command{execute: execute}
}

// NewCommandWithCanExecute creates a synchronous command gated by canExecute.
func NewCommandWithCanExecute(execute func(), canExecute func() bool) *Command {
	return &Command{execute: execute, canExecute: canExecute}
}

// CanExecute reports whether the command may run.
func (c *Command) CanExecute() bool {
	return c.canExecute == nil || c.canExecute()
}

// Execute runs the wrapped method if the command may run.
func (c *Command) Execute() {
	if c.CanExecute() {
		c.execute()
	}
}

// TypedCommand wraps a synchronous method taking one value argument.
type TypedCommand[T any] struct {
	notifier
	execute    func(T)
	canExecute func(T) bool
}

// NewTypedCommand creates an ungated typed synchronous command.
func NewTypedCommand[T any](execute func(T)) *TypedCommand[T] {
	return &TypedCommand[T]{execute: execute}
}

// NewTypedCommandWithCanExecute creates a typed synchronous command gated by
// canExecute, which receives the command argument.
func NewTypedCommandWithCanExecute[T any](execute func(T), canExecute func(T) bool) *TypedCommand[T] {
	return &TypedCommand[T]{execute: execute, canExecute: canExecute}
}

// CanExecute reports whether the command may run with arg.
func (c *TypedCommand[T]) CanExecute(arg T) bool {
	return c.canExecute == nil || c.canExecute(arg)
}

// Execute runs the wrapped method with arg if the command may run.
func (c *TypedCommand[T]) Execute(arg T) {
	if c.CanExecute(arg) {
		c.execute(arg)
	}
}

// Cancelable is the surface a paired cancel command needs from its target.
type Cancelable interface {
	Cancel()
	IsRunning() bool
}

// NewCancelCommand creates the paired command that cancels the in-flight
// execution of an asynchronous command. It can execute only while the target
// is running.
func NewCancelCommand(target Cancelable) *Command {
	return NewCommandWithCanExecute(target.Cancel, target.IsRunning)
}
