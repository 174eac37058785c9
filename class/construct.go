package class

import (
	lua "github.com/yuin/gopher-lua"
)

// Construct is the generic constructor for class instances. Wire it into a
// class's script entry point, typically the __call metamethod of its
// method table:
//
//	"__call": func(L *lua.LState) int { return reg.Construct(L, c) },
//
// so that scripts create instances with `name{ key = value, ... }`.
//
// Argument 2 must be a table of initializer pairs; anything else raises a
// type error. The allocator runs first, then every pair is visited in the
// table's native iteration order: string keys naming a declared property
// with a construct callback invoke it with the new payload and the pair's
// value. Non-string keys are skipped — stringifying a numeric key here
// would corrupt the iteration. Undeclared keys are ignored.
//
// There is no rollback: if a construct callback raises, the partially
// initialized object is abandoned and the error unwinds to the caller.
func (r *Registry) Construct(L *lua.LState, c *Class) int {
	init := L.CheckTable(2)
	ud := c.allocator(L)

	key := lua.LValue(lua.LNil)
	for {
		k, v := init.Next(key)
		if k == lua.LNil {
			break
		}
		if s, ok := k.(lua.LString); ok {
			if prop, found := c.properties[string(s)]; found && prop.New != nil {
				prop.New(L, ud.Value, v)
			}
		}
		key = k
	}

	L.Push(ud)
	return 1
}
