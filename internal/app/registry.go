package app

import (
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// Registry is the single source of truth for who is connected and who is in
// which room. Connections are bound at upgrade time; a membership entry
// appears only on the first enterRoom. Every method runs under one lock so
// the "at most one entry per session" invariant holds across goroutines.
type Registry struct {
	mu    sync.RWMutex
	conns map[core.SessionID]core.ChatConnection
	users map[core.SessionID]*userEntry
	seq   uint64
}

// userEntry keeps insertion order; re-activation moves the user to the end,
// mirroring the remove-then-append semantics of the membership list.
type userEntry struct {
	user domain.User
	seq  uint64
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[core.SessionID]core.ChatConnection),
		users: make(map[core.SessionID]*userEntry),
	}
}

func (r *Registry) Bind(sid core.SessionID, conn core.ChatConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[sid] = conn
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("bound connection")
}

func (r *Registry) Unbind(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbound connection")
}

func (r *Registry) Conn(sid core.SessionID) (core.ChatConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.conns[sid]
	return conn, ok
}

// Connections snapshots every live connection, in or out of a room.
func (r *Registry) Connections() []core.ChatConnection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.ChatConnection, 0, len(r.conns))
	for _, conn := range r.conns {
		out = append(out, conn)
	}
	return out
}

// Activate replaces any existing entry for sid with {sid, name, room}.
// It never fails: names and rooms pass through unvalidated.
func (r *Registry) Activate(sid core.SessionID, name string, room domain.RoomName) domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user := domain.User{ID: string(sid), Name: name, Room: room}
	r.users[sid] = &userEntry{user: user, seq: r.seq}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).
		Str("name", name).Str("room", string(room)).Msg("activated user")
	return user
}

// Remove deletes the entry for sid if present; calling it again is a no-op.
func (r *Registry) Remove(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[sid]; !ok {
		return
	}
	delete(r.users, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("removed user")
}

func (r *Registry) Find(sid core.SessionID) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.users[sid]
	if !ok {
		return domain.User{}, false
	}
	return entry.user, true
}

// UsersInRoom returns the room's occupants in activation order.
func (r *Registry) UsersInRoom(room domain.RoomName) []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]*userEntry, 0, len(r.users))
	for _, e := range r.users {
		if e.user.Room == room {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	out := make([]domain.User, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.user)
	}
	return out
}

// ActiveRooms returns the distinct rooms users currently reference, ordered
// by first activation. A room with no occupants does not exist.
func (r *Registry) ActiveRooms() []domain.RoomName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]*userEntry, 0, len(r.users))
	for _, e := range r.users {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	seen := make(map[domain.RoomName]bool, len(entries))
	out := make([]domain.RoomName, 0, len(entries))
	for _, e := range entries {
		if seen[e.user.Room] {
			continue
		}
		seen[e.user.Room] = true
		out = append(out, e.user.Room)
	}
	return out
}

// ConnsInRoom snapshots the connections of a room's occupants, skipping
// exclude (pass "" to keep everyone).
func (r *Registry) ConnsInRoom(room domain.RoomName, exclude core.SessionID) []core.ChatConnection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.ChatConnection, 0, len(r.users))
	for sid, e := range r.users {
		if e.user.Room != room || sid == exclude {
			continue
		}
		if conn, ok := r.conns[sid]; ok {
			out = append(out, conn)
		}
	}
	return out
}
