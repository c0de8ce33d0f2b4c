// Package domain contains entity without logic, just meta-data
package domain

type RoomName string

// User is one live connection's membership entry. An entry appears on the
// first enterRoom, never on connect, and Room stays non-empty until
// disconnect. Name is client-supplied and never validated or deduplicated.
type User struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Room RoomName `json:"room"`
}
