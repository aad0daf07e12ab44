// Package observable provides the embeddable change-notification base that
// generated property setters raise through.
package observable

import "sync"

// Object is the notification base for view models. Embed it in a struct and
// generated setters call RaisePropertyChanged on it.
type Object struct {
	mu       sync.Mutex
	handlers []func(property string)
}

// OnPropertyChanged registers a handler invoked with the property name after
// every change.
func (o *Object) OnPropertyChanged(h func(property string)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.handlers = append(o.handlers, h)
}

// RaisePropertyChanged notifies all registered handlers.
func (o *Object) RaisePropertyChanged(property string) {
	o.mu.Lock()
	handlers := make([]func(string), len(o.handlers))
	copy(handlers, o.handlers)
	o.mu.Unlock()
	for _, h := range handlers {
		h(property)
	}
}
