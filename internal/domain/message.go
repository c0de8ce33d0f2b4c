package domain

import "time"

// AdminName is the reserved sender for server-generated notices
// (welcomes, joins, leaves). Not tied to any real connection.
const AdminName = "Admin"

// Message is the chat payload shown to clients.
type Message struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Time string `json:"time"`
}

// NewMessage stamps the wall-clock time the way the web client renders it.
func NewMessage(name, text string) Message {
	return Message{
		Name: name,
		Text: text,
		Time: time.Now().Format("3:04:05 PM"),
	}
}
