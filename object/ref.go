package object

import (
	lua "github.com/yuin/gopher-lua"
)

// RefRegistry pins Lua values referenced from native code so they stay
// reachable independent of the interpreter's stack lifetime. Values are
// refcounted: pinning the same value twice requires two Unref calls.
//
// The map entry itself is the pin; as long as the value is a key here,
// Go's collector keeps it (and everything it references) alive.
type RefRegistry struct {
	refs map[lua.LValue]int
}

// NewRefRegistry creates an empty reference registry.
func NewRefRegistry() *RefRegistry {
	return &RefRegistry{
		refs: make(map[lua.LValue]int),
	}
}

// Ref pins the value at stack index idx, removes it from the stack, and
// returns it. Pinning nil is a no-op (nil needs no pin).
func (r *RefRegistry) Ref(L *lua.LState, idx int) lua.LValue {
	v := L.Get(idx)
	if v != lua.LNil {
		r.refs[v]++
	}
	L.Remove(idx)
	return v
}

// Unref releases one pin on v. Releasing a value that was never pinned
// is a no-op.
func (r *RefRegistry) Unref(v lua.LValue) {
	n, ok := r.refs[v]
	if !ok {
		return
	}
	if n <= 1 {
		delete(r.refs, v)
		return
	}
	r.refs[v] = n - 1
}

// Pins returns the current pin count for v.
func (r *RefRegistry) Pins(v lua.LValue) int {
	return r.refs[v]
}

// Len returns the number of distinct pinned values.
func (r *RefRegistry) Len() int {
	return len(r.refs)
}
