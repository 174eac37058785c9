// Package signal implements a named multi-subscriber callback registry.
//
// A Registry maps signal names to ordered lists of Lua handler values.
// It knows nothing about emission; callers (the class and object layers)
// take a handler snapshot and invoke it against their own interpreter
// state. Registries are mutated and read on the single script thread,
// so no locking is required.
package signal

import (
	"sort"

	lua "github.com/yuin/gopher-lua"
)

// Registry holds the subscribers for a set of named signals.
// Handlers fire in subscription order. The same handler may be
// subscribed more than once; each subscription counts separately.
type Registry struct {
	handlers map[string][]lua.LValue
}

// New creates an empty signal registry.
func New() *Registry {
	return &Registry{
		handlers: make(map[string][]lua.LValue),
	}
}

// Add appends a handler under the given signal name.
func (r *Registry) Add(name string, ref lua.LValue) {
	r.handlers[name] = append(r.handlers[name], ref)
}

// Remove removes the first subscription of ref under name, matched by
// identity. Returns false if ref was not subscribed.
func (r *Registry) Remove(name string, ref lua.LValue) bool {
	subs := r.handlers[name]
	for i, h := range subs {
		if h == ref {
			r.handlers[name] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// Handlers returns a snapshot of the subscribers for name, in
// subscription order. An unknown name yields an empty slice, so
// emitting an unregistered signal is a no-op.
func (r *Registry) Handlers(name string) []lua.LValue {
	subs := r.handlers[name]
	if len(subs) == 0 {
		return nil
	}
	out := make([]lua.LValue, len(subs))
	copy(out, subs)
	return out
}

// Count returns the number of subscriptions under name.
func (r *Registry) Count(name string) int {
	return len(r.handlers[name])
}

// Names returns the names that currently have at least one subscriber,
// sorted lexically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name, subs := range r.handlers {
		if len(subs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
