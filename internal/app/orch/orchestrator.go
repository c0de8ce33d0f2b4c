// Package orch reacts to connection events and turns them into membership
// mutations plus broadcast fan-out. All delivery is fire-and-forget: a frame
// that cannot be queued is dropped, never retried.
package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

type Orchestrator struct {
	Registry *app.Registry
}

// Connect binds the transport and greets the client. No membership entry is
// created until the client enters a room.
func (o *Orchestrator) Connect(sid core.SessionID, conn core.ChatConnection) {
	o.Registry.Bind(sid, conn)
	o.sendTo(sid, encodeMessage(domain.NewMessage(domain.AdminName, "Welcome to chat App")))
	log.Info().Str("module", "app.orch").Str("sid", string(sid)).Msg("connected")
}

// Disconnect looks the user up before removal: Remove erases the room needed
// for the departure broadcasts.
func (o *Orchestrator) Disconnect(sid core.SessionID) {
	user, ok := o.Registry.Find(sid)
	o.Registry.Remove(sid)
	o.Registry.Unbind(sid)
	if !ok {
		log.Info().Str("module", "app.orch").Str("sid", string(sid)).Msg("disconnected before joining a room")
		return
	}
	o.broadcastRoom(user.Room, "", encodeMessage(domain.NewMessage(domain.AdminName, user.Name+" has left the room")))
	o.broadcastRoom(user.Room, "", encodeUserList(o.Registry.UsersInRoom(user.Room)))
	o.broadcastAll(encodeRoomList(o.Registry.ActiveRooms()))
	log.Info().Str("module", "app.orch").Str("sid", string(sid)).
		Str("name", user.Name).Str("room", string(user.Room)).Msg("disconnected")
}

// Announce pushes an Admin notice to every connected client, in or out of
// a room.
func (o *Orchestrator) Announce(text string) {
	o.broadcastAll(encodeMessage(domain.NewMessage(domain.AdminName, text)))
	log.Info().Str("module", "app.orch").Str("text", text).Msg("announce")
}

func (o *Orchestrator) sendTo(sid core.SessionID, frame core.Frame) {
	if conn, ok := o.Registry.Conn(sid); ok {
		_ = conn.TrySend(frame)
	}
}

func (o *Orchestrator) broadcastRoom(room domain.RoomName, exclude core.SessionID, frame core.Frame) {
	for _, conn := range o.Registry.ConnsInRoom(room, exclude) {
		_ = conn.TrySend(frame)
	}
}

func (o *Orchestrator) broadcastAll(frame core.Frame) {
	for _, conn := range o.Registry.Connections() {
		_ = conn.TrySend(frame)
	}
}
