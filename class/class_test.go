package class

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/lunakit/lunakit/object"
)

// gadget is the native payload used throughout the package tests.
type gadget struct {
	object.Object
	label string
	size  int
}

func newState(t *testing.T) *lua.LState {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	return L
}

// setupGadget registers a "gadget" class with a read/write "label"
// property, a read-only "size" property, and a "describe" method.
func setupGadget(t *testing.T, L *lua.LState, reg *Registry) *Class {
	t.Helper()
	c := &Class{}
	reg.Setup(L, c, "gadget",
		func(L *lua.LState) *lua.LUserData { return c.NewInstance(L, &gadget{}) },
		nil, nil,
		map[string]lua.LGFunction{
			"__call": func(L *lua.LState) int { return reg.Construct(L, c) },
		},
		map[string]lua.LGFunction{
			"__index":    reg.Index,
			"__newindex": reg.NewIndex,
			"describe": func(L *lua.LState) int {
				g := CheckUserdata(L, 1, c).(*gadget)
				L.Push(lua.LString("gadget " + g.label))
				return 1
			},
		})

	c.AddProperty("label",
		func(L *lua.LState, data any, v lua.LValue) {
			data.(*gadget).label = lua.LVAsString(v)
		},
		func(L *lua.LState, data any) int {
			L.Push(lua.LString(data.(*gadget).label))
			return 1
		},
		func(L *lua.LState, data any) int {
			data.(*gadget).label = L.CheckString(3)
			return 0
		})
	c.AddProperty("size",
		func(L *lua.LState, data any, v lua.LValue) {
			data.(*gadget).size = int(lua.LVAsNumber(v))
		},
		func(L *lua.LState, data any) int {
			L.Push(lua.LNumber(data.(*gadget).size))
			return 1
		},
		nil)
	return c
}

// setupWidget registers a bare "widget" class with no properties.
func setupWidget(t *testing.T, L *lua.LState, reg *Registry) *Class {
	t.Helper()
	type widgetData struct{ object.Object }
	c := &Class{}
	reg.Setup(L, c, "widget",
		func(L *lua.LState) *lua.LUserData { return c.NewInstance(L, &widgetData{}) },
		nil, nil,
		map[string]lua.LGFunction{
			"__call": func(L *lua.LState) int { return reg.Construct(L, c) },
		},
		map[string]lua.LGFunction{
			"__index":    reg.Index,
			"__newindex": reg.NewIndex,
		})
	return c
}

// ---------------------------------------------------------------------------
// Setup tests
// ---------------------------------------------------------------------------

func TestSetupPublishesConstructorGlobal(t *testing.T) {
	L := newState(t)
	reg := NewRegistry()
	setupGadget(t, L, reg)

	lib, ok := L.GetGlobal("gadget").(*lua.LTable)
	if !ok {
		t.Fatal("setup should publish a global constructor table")
	}
	if L.GetMetatable(lib) != lua.LValue(lib) {
		t.Error("constructor table should be its own metatable")
	}
}

func TestSetupAppendsToRegistry(t *testing.T) {
	L := newState(t)
	reg := NewRegistry()
	g := setupGadget(t, L, reg)
	w := setupWidget(t, L, reg)

	if reg.Len() != 2 {
		t.Fatalf("Len = %d, want 2", reg.Len())
	}
	classes := reg.Classes()
	if classes[0] != g || classes[1] != w {
		t.Error("Classes should keep registration order")
	}
	if g.Name() != "gadget" || w.Name() != "widget" {
		t.Errorf("names = %q, %q", g.Name(), w.Name())
	}
}

func TestSetupBindsSelfIndexingMetatable(t *testing.T) {
	L := newState(t)
	reg := NewRegistry()
	c := setupWidget(t, L, reg)

	mt := c.Metatable()
	if mt == nil {
		t.Fatal("setup should create the class metatable")
	}
	// The self-reference is installed first; the meta argument's __index
	// (the generic dispatch) overrides it.
	if mt.RawGetString("__index") == lua.LNil {
		t.Error("metatable should carry an __index entry")
	}
}

// ---------------------------------------------------------------------------
// Property table tests
// ---------------------------------------------------------------------------

func TestPropertyRoundTrip(t *testing.T) {
	L := newState(t)
	reg := NewRegistry()
	c := setupGadget(t, L, reg)

	p, ok := c.Property("label")
	if !ok {
		t.Fatal("label should be declared")
	}
	if p.New == nil || p.Index == nil || p.NewIndex == nil {
		t.Error("label should carry all three callbacks")
	}

	p, ok = c.Property("size")
	if !ok {
		t.Fatal("size should be declared")
	}
	if p.New == nil || p.Index == nil {
		t.Error("size should carry construct and read callbacks")
	}
	if p.NewIndex != nil {
		t.Error("size should have no write callback")
	}

	if _, ok := c.Property("bogus"); ok {
		t.Error("undeclared property should not be found")
	}
}

func TestPropertiesDoNotLeakAcrossClasses(t *testing.T) {
	L := newState(t)
	reg := NewRegistry()
	g := setupGadget(t, L, reg)
	w := setupWidget(t, L, reg)

	w.AddProperty("label", nil, func(L *lua.LState, data any) int { return 0 }, nil)

	gp, _ := g.Property("label")
	wp, _ := w.Property("label")
	if gp.New == nil {
		t.Error("gadget's label should keep its construct callback")
	}
	if wp.New != nil {
		t.Error("widget's label must not inherit gadget's construct callback")
	}
	if g.PropertyCount() != 2 || w.PropertyCount() != 1 {
		t.Errorf("property counts = %d, %d, want 2, 1", g.PropertyCount(), w.PropertyCount())
	}
}

// ---------------------------------------------------------------------------
// Instance allocation
// ---------------------------------------------------------------------------

func TestNewInstanceBindsIdentityTag(t *testing.T) {
	L := newState(t)
	reg := NewRegistry()
	c := setupGadget(t, L, reg)

	data := &gadget{label: "kit"}
	ud := c.NewInstance(L, data)

	if ud.Value != any(data) {
		t.Error("instance should wrap the payload")
	}
	if ud.Env == nil {
		t.Error("instance should carry its own backing table")
	}
	if L.GetMetatable(ud) != lua.LValue(c.Metatable()) {
		t.Error("instance metatable should be the class identity tag")
	}
}

// ---------------------------------------------------------------------------
// OpenLib
// ---------------------------------------------------------------------------

func TestOpenLibPublishesModule(t *testing.T) {
	L := newState(t)

	OpenLib(L, "mylib", map[string]lua.LGFunction{
		"ping": func(L *lua.LState) int {
			L.Push(lua.LString("pong"))
			return 1
		},
	}, nil)

	if err := L.DoString(`v = mylib.ping()`); err != nil {
		t.Fatal(err)
	}
	if got := L.GetGlobal("v"); got != lua.LString("pong") {
		t.Errorf("v = %v, want pong", got)
	}
}
