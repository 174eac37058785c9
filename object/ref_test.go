package object

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func newState(t *testing.T) *lua.LState {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	return L
}

func TestRefPinsAndPopsValue(t *testing.T) {
	L := newState(t)
	r := NewRefRegistry()

	fn := L.NewFunction(func(*lua.LState) int { return 0 })
	L.Push(fn)

	got := r.Ref(L, L.GetTop())
	if got != lua.LValue(fn) {
		t.Error("Ref should return the pinned value")
	}
	if L.GetTop() != 0 {
		t.Errorf("stack top = %d after Ref, want 0", L.GetTop())
	}
	if r.Pins(fn) != 1 {
		t.Errorf("Pins = %d, want 1", r.Pins(fn))
	}
}

func TestRefCountsDuplicatePins(t *testing.T) {
	L := newState(t)
	r := NewRefRegistry()
	fn := L.NewFunction(func(*lua.LState) int { return 0 })

	L.Push(fn)
	r.Ref(L, L.GetTop())
	L.Push(fn)
	r.Ref(L, L.GetTop())

	if r.Pins(fn) != 2 {
		t.Fatalf("Pins = %d, want 2", r.Pins(fn))
	}

	r.Unref(fn)
	if r.Pins(fn) != 1 {
		t.Errorf("Pins after one Unref = %d, want 1", r.Pins(fn))
	}
	r.Unref(fn)
	if r.Pins(fn) != 0 {
		t.Errorf("Pins after two Unrefs = %d, want 0", r.Pins(fn))
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestUnrefUnknownIsNoop(t *testing.T) {
	L := newState(t)
	r := NewRefRegistry()
	fn := L.NewFunction(func(*lua.LState) int { return 0 })

	r.Unref(fn) // never pinned
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestRefNilNeedsNoPin(t *testing.T) {
	L := newState(t)
	r := NewRefRegistry()

	L.Push(lua.LNil)
	got := r.Ref(L, L.GetTop())
	if got != lua.LNil {
		t.Error("Ref of nil should return nil")
	}
	if L.GetTop() != 0 {
		t.Errorf("stack top = %d after Ref, want 0", L.GetTop())
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0 (nil is never pinned)", r.Len())
	}
}
