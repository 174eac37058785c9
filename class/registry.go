package class

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lunakit/lunakit/signal"
)

// Registry is the process-scoped collection of registered classes, probed
// during type identification. It is append-only after startup: Setup is
// the only writer, dispatch only reads, so no synchronization is needed on
// the single script thread.
type Registry struct {
	classes []*Class
}

// NewRegistry creates an empty class registry. Create one per interpreter
// and pass it to Setup and to the dispatch entry points; there is no
// hidden global registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Setup performs the one-time initialization of c:
//
//   - creates the class metatable (the identity tag) and installs it as
//     its own __index fallback, so methods stored in it resolve through
//     the same table
//   - installs the caller's metamethods from meta (typically this
//     registry's Index and NewIndex as __index/__newindex, overriding the
//     self-reference)
//   - publishes the method table as a global under name; the table is its
//     own metatable, so a __call entry among methods acts as the
//     script-visible constructor
//   - stores name, allocator and miss-handlers on the descriptor and
//     appends it to the registry
//
// Calling Setup twice for the same class is undefined; callers register
// each class exactly once during startup, before any instance exists.
func (r *Registry) Setup(L *lua.LState, c *Class, name string, allocator Allocator,
	indexMiss, newindexMiss PropFunc, methods, meta map[string]lua.LGFunction) {

	mt := L.NewTable()
	mt.RawSetString("__index", mt)
	if len(meta) > 0 {
		L.SetFuncs(mt, meta)
	}

	lib := L.NewTable()
	if len(methods) > 0 {
		L.SetFuncs(lib, methods)
	}
	L.SetMetatable(lib, lib)
	L.SetGlobal(name, lib)

	c.name = name
	c.allocator = allocator
	c.indexMiss = indexMiss
	c.newindexMiss = newindexMiss
	c.metatable = mt
	if c.properties == nil {
		c.properties = make(map[string]Property)
	}
	if c.signals == nil {
		c.signals = signal.New()
	}

	r.classes = append(r.classes, c)
	log.Debugf("registered class %q", name)
}

// Classes returns the registered classes in registration order.
func (r *Registry) Classes() []*Class {
	out := make([]*Class, len(r.classes))
	copy(out, r.classes)
	return out
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	return len(r.classes)
}

// OpenLib publishes a module table: a named metatable carrying meta with
// itself as __index fallback, and a global table under name carrying
// methods, set as its own metatable so metamethods among methods apply to
// it directly. Used for module-level (classless) script libraries.
func OpenLib(L *lua.LState, name string, methods, meta map[string]lua.LGFunction) *lua.LTable {
	mt := L.NewTypeMetatable(name)
	mt.RawSetString("__index", mt)
	if len(meta) > 0 {
		L.SetFuncs(mt, meta)
	}

	lib := L.NewTable()
	if len(methods) > 0 {
		L.SetFuncs(lib, methods)
	}
	L.SetMetatable(lib, lib)
	L.SetGlobal(name, lib)
	return lib
}
