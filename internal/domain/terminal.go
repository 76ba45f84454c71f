package domain

import "time"

// EntryKind classifies a terminal display entry.
type EntryKind string

// Terminal entry kinds. Input entries are appended by the caller to echo
// what the user typed; the interpreter only produces the other three.
const (
	EntryInput  EntryKind = "input"
	EntryOutput EntryKind = "output"
	EntryError  EntryKind = "error"
	EntrySystem EntryKind = "system"
)

// Entry is a single line group in the terminal display buffer.
type Entry struct {
	Kind      EntryKind `json:"kind"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
