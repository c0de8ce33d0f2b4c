package core

// Frame is a single encoded event ready for the wire.
type Frame []byte

type SessionID string

// ChatConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type ChatConnection interface {
	TrySend(Frame) error
	Close()
}
