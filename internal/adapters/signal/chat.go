package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/core"
)

func (ctl *ChatWSController) handleEnterRoom(sid core.SessionID, data []byte) {
	type enterPayload struct {
		Type string `json:"type"`
		Name string `json:"name"`
		Room string `json:"room"`
	}
	var p enterPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad enterRoom payload")
		return
	}
	ctl.Orch.EnterRoom(sid, p.Name, p.Room)
}

func (ctl *ChatWSController) handleMessage(sid core.SessionID, data []byte) {
	type messagePayload struct {
		Type string `json:"type"`
		Name string `json:"name"`
		Text string `json:"text"`
	}
	var p messagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad message payload")
		return
	}
	ctl.Orch.Message(sid, p.Name, p.Text)
}

func (ctl *ChatWSController) handleActivity(sid core.SessionID, data []byte) {
	type activityPayload struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}
	var p activityPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad activity payload")
		return
	}
	ctl.Orch.Activity(sid, p.Name)
}
