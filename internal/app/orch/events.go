package orch

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// Outbound events carry a type tag so the client can switch on them,
// matching the inbound envelope shape.

type messageEvent struct {
	Type string `json:"type"`
	domain.Message
}

type activityEvent struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Text string `json:"text"`
}

type userListEvent struct {
	Type  string        `json:"type"`
	Users []domain.User `json:"users"`
}

type roomListEvent struct {
	Type  string            `json:"type"`
	Rooms []domain.RoomName `json:"rooms"`
}

func encodeMessage(msg domain.Message) core.Frame {
	return encode(messageEvent{Type: "message", Message: msg})
}

// encodeActivity mirrors the name into the text field; the payload is a
// pure typing-indicator signal.
func encodeActivity(name string) core.Frame {
	return encode(activityEvent{Type: "activity", Name: name, Text: name})
}

func encodeUserList(users []domain.User) core.Frame {
	return encode(userListEvent{Type: "userList", Users: users})
}

func encodeRoomList(rooms []domain.RoomName) core.Frame {
	return encode(roomListEvent{Type: "roomList", Rooms: rooms})
}

func encode(v any) core.Frame {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.orch").Msg("encode event")
		return nil
	}
	return b
}
