package app

import (
	"testing"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

type fakeConn struct {
	frames []core.Frame
}

func (c *fakeConn) TrySend(f core.Frame) error {
	c.frames = append(c.frames, f)
	return nil
}

func (c *fakeConn) Close() {}

// TestActivateReplacesExistingEntry verifies the one-entry-per-session
// invariant: re-activation overwrites, it never accumulates.
func TestActivateReplacesExistingEntry(t *testing.T) {
	r := NewRegistry()

	r.Activate("c1", "Alice", "general")
	r.Activate("c1", "Alicia", "sports")

	user, ok := r.Find("c1")
	if !ok {
		t.Fatal("expected entry for c1")
	}
	if user.Name != "Alicia" || user.Room != "sports" {
		t.Errorf("entry not replaced: got %+v", user)
	}
	if got := len(r.UsersInRoom("general")); got != 0 {
		t.Errorf("old room still has %d users", got)
	}
	if got := len(r.UsersInRoom("sports")); got != 1 {
		t.Errorf("new room has %d users, want 1", got)
	}
}

// TestRemoveIdempotent verifies a second Remove is a harmless no-op.
func TestRemoveIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Activate("c1", "Alice", "general")

	r.Remove("c1")
	if _, ok := r.Find("c1"); ok {
		t.Fatal("entry survived Remove")
	}
	r.Remove("c1")
	if _, ok := r.Find("c1"); ok {
		t.Fatal("entry reappeared after second Remove")
	}
}

// TestFindMissing verifies Find reports absence without creating entries.
func TestFindMissing(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Find("ghost"); ok {
		t.Fatal("found entry that was never activated")
	}
	if got := len(r.ActiveRooms()); got != 0 {
		t.Errorf("empty registry reports %d rooms", got)
	}
}

// TestUsersInRoomInsertionOrder verifies occupant lists keep activation
// order, and that re-activation moves a user to the end.
func TestUsersInRoomInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Activate("c1", "Alice", "general")
	r.Activate("c2", "Bob", "general")
	r.Activate("c3", "Carol", "general")

	names := func() []string {
		users := r.UsersInRoom("general")
		out := make([]string, len(users))
		for i, u := range users {
			out[i] = u.Name
		}
		return out
	}

	got := names()
	want := []string{"Alice", "Bob", "Carol"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}

	r.Activate("c1", "Alice", "general")
	got = names()
	want = []string{"Bob", "Carol", "Alice"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after re-activation order %v, want %v", got, want)
		}
	}
}

// TestActiveRoomsDistinctFirstSeen verifies room listing order and that a
// room disappears with its last occupant.
func TestActiveRoomsDistinctFirstSeen(t *testing.T) {
	r := NewRegistry()
	r.Activate("c1", "Alice", "general")
	r.Activate("c2", "Bob", "sports")
	r.Activate("c3", "Carol", "general")

	rooms := r.ActiveRooms()
	if len(rooms) != 2 || rooms[0] != "general" || rooms[1] != "sports" {
		t.Fatalf("rooms = %v, want [general sports]", rooms)
	}

	r.Remove("c2")
	rooms = r.ActiveRooms()
	if len(rooms) != 1 || rooms[0] != "general" {
		t.Fatalf("rooms = %v after sole occupant left sports", rooms)
	}

	// No room may appear in the listing with an empty occupant set.
	for _, room := range rooms {
		if len(r.UsersInRoom(room)) == 0 {
			t.Errorf("room %q listed but empty", room)
		}
	}
}

// TestConnsInRoomExcludesSender verifies the fan-out snapshot honors the
// exclude argument and only covers bound connections.
func TestConnsInRoomExcludesSender(t *testing.T) {
	r := NewRegistry()
	c1, c2 := &fakeConn{}, &fakeConn{}
	r.Bind("c1", c1)
	r.Bind("c2", c2)
	r.Activate("c1", "Alice", "general")
	r.Activate("c2", "Bob", "general")
	r.Activate("c3", "Eve", "general") // never bound

	conns := r.ConnsInRoom("general", "c1")
	if len(conns) != 1 {
		t.Fatalf("got %d conns, want 1", len(conns))
	}
	if conns[0] != core.ChatConnection(c2) {
		t.Error("exclusion kept the wrong connection")
	}

	all := r.ConnsInRoom(domain.RoomName("general"), "")
	if len(all) != 2 {
		t.Errorf("got %d conns without exclusion, want 2", len(all))
	}
}

// TestUnbindDropsConnection verifies unbound sessions vanish from the
// broadcast substrate.
func TestUnbindDropsConnection(t *testing.T) {
	r := NewRegistry()
	r.Bind("c1", &fakeConn{})
	if len(r.Connections()) != 1 {
		t.Fatal("expected one bound connection")
	}
	r.Unbind("c1")
	if len(r.Connections()) != 0 {
		t.Fatal("connection survived Unbind")
	}
	if _, ok := r.Conn("c1"); ok {
		t.Fatal("Conn still resolves after Unbind")
	}
}
