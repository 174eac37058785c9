package class

import (
	"github.com/tliron/commonlog"
	lua "github.com/yuin/gopher-lua"

	"github.com/lunakit/lunakit/signal"
)

var log = commonlog.GetLogger("lunakit.class")

// Allocator produces a fresh native-backed instance of its class. The
// returned userdata must already carry the class identity tag — build it
// with (*Class).NewInstance, which binds the tag and the instance's own
// backing table. Called exactly once per Construct.
type Allocator func(L *lua.LState) *lua.LUserData

// PropFunc handles a property read or write, or a miss-handler call. The
// dispatch call frame is still on the stack: object at index 1, key at
// index 2, and for writes the new value at index 3. data is the
// type-checked native payload. Returns the number of results pushed.
type PropFunc func(L *lua.LState, data any) int

// ConstructFunc applies one initializer value to a freshly allocated
// instance during Construct. data is the native payload; value is the
// initializer table entry for this property.
type ConstructFunc func(L *lua.LState, data any, value lua.LValue)

// Property is the descriptor triple for one named attribute of a class.
// Any callback may be nil, meaning that operation is unsupported for the
// property: a nil Index makes it unreadable, a nil NewIndex makes writes
// a silent no-op.
type Property struct {
	New      ConstructFunc
	Index    PropFunc
	NewIndex PropFunc
}

// Class describes one native type exposed to scripts. The zero value is a
// blank descriptor; (*Registry).Setup initializes it exactly once during
// startup. After setup a class is mutated only by AddProperty calls during
// the same initialization phase, and lives for the process lifetime.
type Class struct {
	name         string
	allocator    Allocator
	indexMiss    PropFunc
	newindexMiss PropFunc

	// metatable is the identity tag: every instance carries it, no other
	// class shares it, and the type test is pointer equality against it.
	metatable *lua.LTable

	properties map[string]Property
	signals    *signal.Registry
}

// Name returns the script-visible class name set by Setup.
func (c *Class) Name() string {
	return c.name
}

// Metatable returns the class identity tag.
func (c *Class) Metatable() *lua.LTable {
	return c.metatable
}

// Signals returns the class-level signal registry, creating it on first use.
func (c *Class) Signals() *signal.Registry {
	if c.signals == nil {
		c.signals = signal.New()
	}
	return c.signals
}

// AddProperty registers a property descriptor under name. Names are unique
// per class; registering a name twice replaces the descriptor. Memory
// exhaustion while growing the table is fatal to the process — there is no
// recoverable out-of-memory path.
func (c *Class) AddProperty(name string, onConstruct ConstructFunc, onIndex, onNewIndex PropFunc) {
	log.Debugf("adding property %q to class %q", name, c.name)
	if c.properties == nil {
		c.properties = make(map[string]Property)
	}
	c.properties[name] = Property{
		New:      onConstruct,
		Index:    onIndex,
		NewIndex: onNewIndex,
	}
}

// Property returns the descriptor registered under name.
func (c *Class) Property(name string) (Property, bool) {
	p, ok := c.properties[name]
	return p, ok
}

// PropertyCount returns the number of declared properties.
func (c *Class) PropertyCount() int {
	return len(c.properties)
}

// NewInstance allocates a new userdata wrapping data: the native payload,
// an empty backing table for per-instance fields, and the class identity
// tag. Allocators are normally thin wrappers around this.
func (c *Class) NewInstance(L *lua.LState, data any) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = data
	ud.Env = L.NewTable()
	L.SetMetatable(ud, c.metatable)
	return ud
}
