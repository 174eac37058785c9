// Package object provides the instance-side collaborators of the class
// system: durable Lua value references (RefRegistry), signal emission over
// a prepared argument window, and an embeddable Object base that gives
// every native payload its own per-instance signal registry.
package object

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lunakit/lunakit/signal"
)

// Object is the common base for native payloads exposed as class
// instances. Embed it in the struct an allocator wraps:
//
//	type counter struct {
//		object.Object
//		value int
//	}
//
// Embedding gives each instance its own signal registry, separate from
// the class-level one.
type Object struct {
	signals *signal.Registry
}

// Signals returns the instance's signal registry, creating it on first use.
func (o *Object) Signals() *signal.Registry {
	if o.signals == nil {
		o.signals = signal.New()
	}
	return o.signals
}

// AddSignal subscribes the function at stack index idx to the named
// instance signal. Raises a type error if the value is not a function.
// The callback is pinned in refs for the lifetime of the subscription.
func (o *Object) AddSignal(L *lua.LState, refs *RefRegistry, name string, idx int) {
	L.CheckFunction(idx)
	o.Signals().Add(name, refs.Ref(L, idx))
}

// RemoveSignal unsubscribes the function at stack index idx from the named
// instance signal, matching by identity, and releases its pin.
func (o *Object) RemoveSignal(L *lua.LState, refs *RefRegistry, name string, idx int) {
	fn := L.CheckFunction(idx)
	o.Signals().Remove(name, fn)
	refs.Unref(fn)
	L.Remove(idx)
}

// EmitSignal fires the named instance signal with the top nargs stack
// values as arguments.
func (o *Object) EmitSignal(L *lua.LState, name string, nargs int) {
	EmitSignal(L, o.Signals(), name, nargs)
}

// EmitSignal pops the top nargs stack values and calls every handler
// subscribed under name, in subscription order, passing those values as
// arguments. Handlers run unprotected: an error raised inside one unwinds
// to the interpreter's error handling, exactly like any other script
// error. Emitting a name with no subscribers is a no-op.
func EmitSignal(L *lua.LState, r *signal.Registry, name string, nargs int) {
	args := make([]lua.LValue, nargs)
	top := L.GetTop()
	for i := 0; i < nargs; i++ {
		args[i] = L.Get(top - nargs + 1 + i)
	}
	L.Pop(nargs)

	for _, handler := range r.Handlers(name) {
		L.CallByParam(lua.P{
			Fn:      handler,
			NRet:    0,
			Protect: false,
		}, args...)
	}
}
