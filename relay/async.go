package relay

import (
	"context"
	"sync"
)

// asyncState is the shared bookkeeping of asynchronous commands: running
// count, cancellation of the in-flight execution, and the last retained
// error.
type asyncState struct {
	mu      sync.Mutex
	running int
	cancel  context.CancelFunc
	lastErr error
	options Options
}

func (s *asyncState) begin() (context.Context, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running > 0 && s.options&AllowConcurrentExecutions == 0 {
		return nil, false
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.running++
	s.cancel = cancel
	return ctx, true
}

func (s *asyncState) end(err error) {
	s.mu.Lock()
	s.running--
	if s.running == 0 {
		s.cancel = nil
	}
	flow := s.options&FlowExceptionsToScheduler != 0
	if err != nil && !flow {
		s.lastErr = err
	}
	s.mu.Unlock()
	if err != nil && flow {
		UnhandledError(err)
	}
}

// IsRunning reports whether an execution is in flight.
func (s *asyncState) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running > 0
}

// Cancel cancels the in-flight execution, if any.
func (s *asyncState) Cancel() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// LastError returns the most recent retained execution error.
func (s *asyncState) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// AsyncCommand wraps an asynchronous parameterless method. Execution runs on
// its own goroutine; unless AllowConcurrentExecutions is set, the command
// refuses to start while a previous execution is still running.
type AsyncCommand struct {
	notifier
	asyncState
	execute    func(context.Context) error
	canExecute func() bool
}

// NewAsyncCommand creates an ungated asynchronous command.
func NewAsyncCommand(execute func() error, opts ...Options) *AsyncCommand {
	return newAsync(func(context.Context) error { return execute() }, nil, opts)
}

// NewAsyncCommandWithCanExecute creates an asynchronous command gated by
// canExecute.
func NewAsyncCommandWithCanExecute(execute func() error, canExecute func() bool, opts ...Options) *AsyncCommand {
	return newAsync(func(context.Context) error { return execute() }, canExecute, opts)
}

// NewCancelableAsyncCommand creates an asynchronous command whose method
// observes cancellation through its context.
func NewCancelableAsyncCommand(execute func(context.Context) error, opts ...Options) *AsyncCommand {
	return newAsync(execute, nil, opts)
}

// NewCancelableAsyncCommandWithCanExecute creates a cancelable asynchronous
// command gated by canExecute.
func NewCancelableAsyncCommandWithCanExecute(execute func(context.Context) error, canExecute func() bool, opts ...Options) *AsyncCommand {
	return newAsync(execute, canExecute, opts)
}

func newAsync(execute func(context.Context) error, canExecute func() bool, opts []Options) *AsyncCommand {
	c := &AsyncCommand{execute: execute, canExecute: canExecute}
	c.options = combine(opts)
	return c
}

// CanExecute reports whether the command may start.
func (c *AsyncCommand) CanExecute() bool {
	if c.canExecute != nil && !c.canExecute() {
		return false
	}
	return c.options&AllowConcurrentExecutions != 0 || !c.IsRunning()
}

// Execute starts the wrapped method on a new goroutine if the command may
// start. It returns immediately.
func (c *AsyncCommand) Execute() {
	if c.canExecute != nil && !c.canExecute() {
		return
	}
	ctx, ok := c.begin()
	if !ok {
		return
	}
	c.NotifyCanExecuteChanged()
	go func() {
		err := c.execute(ctx)
		c.end(err)
		c.NotifyCanExecuteChanged()
	}()
}

// TypedAsyncCommand wraps an asynchronous method taking one value argument.
type TypedAsyncCommand[T any] struct {
	notifier
	asyncState
	execute    func(context.Context, T) error
	canExecute func(T) bool
}

// NewTypedAsyncCommand creates an ungated typed asynchronous command.
func NewTypedAsyncCommand[T any](execute func(T) error, opts ...Options) *TypedAsyncCommand[T] {
	return newTypedAsync(func(_ context.Context, arg T) error { return execute(arg) }, nil, opts)
}

// NewTypedAsyncCommandWithCanExecute creates a typed asynchronous command
// gated by canExecute.
func NewTypedAsyncCommandWithCanExecute[T any](execute func(T) error, canExecute func(T) bool, opts ...Options) *TypedAsyncCommand[T] {
	return newTypedAsync(func(_ context.Context, arg T) error { return execute(arg) }, canExecute, opts)
}

// NewCancelableTypedAsyncCommand creates a typed asynchronous command whose
// method observes cancellation through its context.
func NewCancelableTypedAsyncCommand[T any](execute func(context.Context, T) error, opts ...Options) *TypedAsyncCommand[T] {
	return newTypedAsync(execute, nil, opts)
}

// NewCancelableTypedAsyncCommandWithCanExecute creates a cancelable typed
// asynchronous command gated by canExecute.
func NewCancelableTypedAsyncCommandWithCanExecute[T any](execute func(context.Context, T) error, canExecute func(T) bool, opts ...Options) *TypedAsyncCommand[T] {
	return newTypedAsync(execute, canExecute, opts)
}

func newTypedAsync[T any](execute func(context.Context, T) error, canExecute func(T) bool, opts []Options) *TypedAsyncCommand[T] {
	c := &TypedAsyncCommand[T]{execute: execute, canExecute: canExecute}
	c.options = combine(opts)
	return c
}

// CanExecute reports whether the command may start with arg.
func (c *TypedAsyncCommand[T]) CanExecute(arg T) bool {
	if c.canExecute != nil && !c.canExecute(arg) {
		return false
	}
	return c.options&AllowConcurrentExecutions != 0 || !c.IsRunning()
}

// Execute starts the wrapped method with arg on a new goroutine if the
// command may start. It returns immediately.
func (c *TypedAsyncCommand[T]) Execute(arg T) {
	if c.canExecute != nil && !c.canExecute(arg) {
		return
	}
	ctx, ok := c.begin()
	if !ok {
		return
	}
	c.NotifyCanExecuteChanged()
	go func() {
		err := c.execute(ctx, arg)
		c.end(err)
		c.NotifyCanExecuteChanged()
	}()
}
