package class

import (
	lua "github.com/yuin/gopher-lua"
)

// ToUserdata returns the native payload at stack index idx if and only if
// the value there is a userdata whose metatable is c's identity tag. The
// test is pointer equality on the metatable — O(1), no string or
// structural comparison. Never raises.
func ToUserdata(L *lua.LState, idx int, c *Class) (any, bool) {
	ud, ok := L.Get(idx).(*lua.LUserData)
	if !ok {
		return nil, false
	}
	mt, ok := L.GetMetatable(ud).(*lua.LTable)
	if !ok || mt != c.metatable {
		return nil, false
	}
	return ud.Value, true
}

// CheckUserdata is ToUserdata with teeth: it raises a Lua argument error
// when the value at idx is not an instance of c. Dispatch entry points use
// it to guarantee a native payload before invoking callbacks.
func CheckUserdata(L *lua.LState, idx int, c *Class) any {
	data, ok := ToUserdata(L, idx, c)
	if !ok {
		L.ArgError(idx, c.name+" expected, got "+L.Get(idx).Type().String())
	}
	return data
}

// ClassOf returns the class the value at idx is an instance of, probing
// registered classes in registration order. The scan is linear: the
// registry holds one entry per exposed type, not per object, so it stays
// small and fixed for the process lifetime. Returns nil for plain Lua
// values and foreign userdata.
func (r *Registry) ClassOf(L *lua.LState, idx int) *Class {
	if _, ok := L.Get(idx).(*lua.LUserData); !ok {
		return nil
	}
	for _, c := range r.classes {
		if _, ok := ToUserdata(L, idx, c); ok {
			return c
		}
	}
	return nil
}

// TypeName returns the class name for values belonging to a registered
// class, and the interpreter's own type name for everything else. Used in
// diagnostics and error messages.
func (r *Registry) TypeName(L *lua.LState, idx int) string {
	if c := r.ClassOf(L, idx); c != nil {
		return c.name
	}
	return L.Get(idx).Type().String()
}
