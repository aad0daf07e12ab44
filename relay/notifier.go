package relay

import "sync"

// notifier implements CanExecuteChanged subscription for all command types.
type notifier struct {
	mu       sync.Mutex
	handlers []func()
}

// OnCanExecuteChanged registers a handler invoked whenever the command's
// executability may have changed.
func (n *notifier) OnCanExecuteChanged(h func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers = append(n.handlers, h)
}

// NotifyCanExecuteChanged invokes the registered handlers.
func (n *notifier) NotifyCanExecuteChanged() {
	n.mu.Lock()
	handlers := make([]func(), len(n.handlers))
	copy(handlers, n.handlers)
	n.mu.Unlock()
	for _, h := range handlers {
		h()
	}
}
