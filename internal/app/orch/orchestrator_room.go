package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// EnterRoom moves the session into a room, leaving any previous one first.
// Re-entering the current room is deliberately not special-cased: the full
// leave/join notice sequence fires again.
func (o *Orchestrator) EnterRoom(sid core.SessionID, name, room string) {
	prev, hadPrev := o.Registry.Find(sid)
	if hadPrev {
		o.broadcastRoom(prev.Room, sid, encodeMessage(domain.NewMessage(domain.AdminName, name+" has left the room")))
	}

	user := o.Registry.Activate(sid, name, domain.RoomName(room))

	// The old room's list must be rebuilt after activation, otherwise it
	// would still include the user who just left.
	if hadPrev {
		o.broadcastRoom(prev.Room, sid, encodeUserList(o.Registry.UsersInRoom(prev.Room)))
	}

	o.sendTo(sid, encodeMessage(domain.NewMessage(domain.AdminName, "You have joined the "+room+" chat room")))
	o.broadcastRoom(user.Room, sid, encodeMessage(domain.NewMessage(domain.AdminName, name+" has joined the room")))
	o.broadcastRoom(user.Room, "", encodeUserList(o.Registry.UsersInRoom(user.Room)))
	o.broadcastAll(encodeRoomList(o.Registry.ActiveRooms()))

	log.Info().Str("module", "app.orch").Str("sid", string(sid)).
		Str("name", name).Str("room", room).Msg("entered room")
}
