package class

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lunakit/lunakit/object"
)

// AddSignal subscribes the function at stack index idx to the named class
// signal. The value must be a function; anything else raises a type error.
// The callback is pinned in refs for as long as the subscription lives, so
// it survives independent of the interpreter's stack.
func (c *Class) AddSignal(L *lua.LState, refs *object.RefRegistry, name string, idx int) {
	L.CheckFunction(idx)
	c.Signals().Add(name, refs.Ref(L, idx))
}

// RemoveSignal unsubscribes the function at stack index idx from the named
// class signal, matching by identity, then releases its pin and removes
// the value from the stack.
func (c *Class) RemoveSignal(L *lua.LState, refs *object.RefRegistry, name string, idx int) {
	fn := L.CheckFunction(idx)
	c.Signals().Remove(name, fn)
	refs.Unref(fn)
	L.Remove(idx)
}

// EmitSignal fires the named class signal, invoking every subscriber in
// subscription order with the top nargs stack values as arguments.
// Emitting an unknown name is a no-op.
func (c *Class) EmitSignal(L *lua.LState, name string, nargs int) {
	object.EmitSignal(L, c.Signals(), name, nargs)
}
