package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// Message relays a chat line to the sender's whole room, sender included.
// A sender with no room produces nothing; that is not an error.
func (o *Orchestrator) Message(sid core.SessionID, name, text string) {
	user, ok := o.Registry.Find(sid)
	if !ok {
		log.Debug().Str("module", "app.orch").Str("sid", string(sid)).Msg("message before entering a room, dropped")
		return
	}
	o.broadcastRoom(user.Room, "", encodeMessage(domain.NewMessage(name, text)))
}

// Activity relays a typing signal to everyone else in the sender's room.
func (o *Orchestrator) Activity(sid core.SessionID, name string) {
	user, ok := o.Registry.Find(sid)
	if !ok {
		log.Debug().Str("module", "app.orch").Str("sid", string(sid)).Msg("activity before entering a room, dropped")
		return
	}
	o.broadcastRoom(user.Room, sid, encodeActivity(name))
}
