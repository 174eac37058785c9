package main

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lunakit/lunakit/class"
	"github.com/lunakit/lunakit/object"
)

// counter is the native payload behind the demo class. Scripts construct
// counters with `counter { value = 10, step = 2 }`, read and write the
// value property, and bump it through the add method; step is readable
// but not writable from scripts.
type counter struct {
	object.Object
	value int
	step  int
}

// registerCounter exposes the counter class to scripts, along with
// class-level add_signal/remove_signal/emit_signal statics mirroring the
// usual object-system surface.
func registerCounter(L *lua.LState, reg *class.Registry, refs *object.RefRegistry) *class.Class {
	c := &class.Class{}

	reg.Setup(L, c, "counter",
		func(L *lua.LState) *lua.LUserData {
			return c.NewInstance(L, &counter{step: 1})
		},
		nil, nil,
		map[string]lua.LGFunction{
			"__call": func(L *lua.LState) int { return reg.Construct(L, c) },
			"add_signal": func(L *lua.LState) int {
				c.AddSignal(L, refs, L.CheckString(1), 2)
				return 0
			},
			"remove_signal": func(L *lua.LState) int {
				c.RemoveSignal(L, refs, L.CheckString(1), 2)
				return 0
			},
			"emit_signal": func(L *lua.LState) int {
				c.EmitSignal(L, L.CheckString(1), L.GetTop()-1)
				return 0
			},
		},
		map[string]lua.LGFunction{
			"__index":    reg.Index,
			"__newindex": reg.NewIndex,
			"add": func(L *lua.LState) int {
				data := class.CheckUserdata(L, 1, c).(*counter)
				n := L.OptInt(2, 1)
				data.value += n * data.step

				L.Push(L.Get(1))
				L.Push(lua.LNumber(data.value))
				c.EmitSignal(L, "changed", 2)

				L.Push(lua.LNumber(data.value))
				return 1
			},
			"add_signal": func(L *lua.LState) int {
				data := class.CheckUserdata(L, 1, c).(*counter)
				data.AddSignal(L, refs, L.CheckString(2), 3)
				return 0
			},
			"remove_signal": func(L *lua.LState) int {
				data := class.CheckUserdata(L, 1, c).(*counter)
				data.RemoveSignal(L, refs, L.CheckString(2), 3)
				return 0
			},
			"emit_signal": func(L *lua.LState) int {
				data := class.CheckUserdata(L, 1, c).(*counter)
				data.EmitSignal(L, L.CheckString(2), L.GetTop()-2)
				return 0
			},
		})

	c.AddProperty("value",
		func(L *lua.LState, data any, v lua.LValue) {
			data.(*counter).value = int(lua.LVAsNumber(v))
		},
		func(L *lua.LState, data any) int {
			L.Push(lua.LNumber(data.(*counter).value))
			return 1
		},
		func(L *lua.LState, data any) int {
			data.(*counter).value = L.CheckInt(3)
			return 0
		})

	c.AddProperty("step",
		func(L *lua.LState, data any, v lua.LValue) {
			data.(*counter).step = int(lua.LVAsNumber(v))
		},
		func(L *lua.LState, data any) int {
			L.Push(lua.LNumber(data.(*counter).step))
			return 1
		},
		nil)

	return c
}
