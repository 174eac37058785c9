package class

import (
	lua "github.com/yuin/gopher-lua"
)

// resolveOwn looks the field at stack index fieldIdx up in the object's
// own backing table, then raw in its metatable (where declared methods
// live). A non-nil hit is pushed and 1 returned; otherwise 0. This step
// runs before read dispatch, so per-instance fields and methods shadow
// declared properties.
func resolveOwn(L *lua.LState, objIdx, fieldIdx int) int {
	field := L.Get(fieldIdx)

	if ud, ok := L.Get(objIdx).(*lua.LUserData); ok && ud.Env != nil {
		if v := ud.Env.RawGet(field); v != lua.LNil {
			L.Push(v)
			return 1
		}
	}
	return resolveMeta(L, objIdx, fieldIdx)
}

// resolveMeta is the raw metatable lookup alone. Write dispatch uses it
// instead of resolveOwn: a key stored in the instance's own table (for
// example by a write-miss handler) must not capture later assignments,
// which keep flowing through the class write path.
func resolveMeta(L *lua.LState, objIdx, fieldIdx int) int {
	if mt, ok := L.GetMetatable(L.Get(objIdx)).(*lua.LTable); ok {
		if v := mt.RawGet(L.Get(fieldIdx)); v != lua.LNil {
			L.Push(v)
			return 1
		}
	}
	return 0
}

// Index is the generic __index metamethod for class instances; install it
// through Setup's meta argument. Resolution is an explicit fallthrough:
// own fields and methods first, then the declared property's read
// callback, then the class read-miss handler. A declared property without
// a read callback yields nothing. Reading never mutates the object.
func (r *Registry) Index(L *lua.LState) int {
	if n := resolveOwn(L, 1, 2); n > 0 {
		return n
	}

	c := r.ClassOf(L, 1)
	if c == nil {
		return 0
	}
	name := L.CheckString(2)

	if prop, ok := c.properties[name]; ok {
		if prop.Index != nil {
			return prop.Index(L, CheckUserdata(L, 1, c))
		}
		return 0
	}
	if c.indexMiss != nil {
		return c.indexMiss(L, CheckUserdata(L, 1, c))
	}
	return 0
}

// NewIndex is the generic __newindex metamethod, mirroring Index against
// the write callback and the write-miss handler. Only a raw metatable hit
// short-circuits here: own fields are a read-side shadow, and writes to
// them still reach the class write path. Assigning to a declared property
// that has no write callback performs no mutation and raises no error;
// undeclared names without a miss handler are likewise swallowed.
func (r *Registry) NewIndex(L *lua.LState) int {
	if n := resolveMeta(L, 1, 2); n > 0 {
		return n
	}

	c := r.ClassOf(L, 1)
	if c == nil {
		return 0
	}
	name := L.CheckString(2)

	if prop, ok := c.properties[name]; ok {
		if prop.NewIndex != nil {
			return prop.NewIndex(L, CheckUserdata(L, 1, c))
		}
		return 0
	}
	if c.newindexMiss != nil {
		return c.newindexMiss(L, CheckUserdata(L, 1, c))
	}
	return 0
}
