package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus tracks the triage state of a contact form submission.
type ContactStatus string

// Supported contact statuses, in triage order.
const (
	ContactStatusUnread   ContactStatus = "UNREAD"
	ContactStatusRead     ContactStatus = "READ"
	ContactStatusReplied  ContactStatus = "REPLIED"
	ContactStatusArchived ContactStatus = "ARCHIVED"
)

// Valid reports whether s is one of the supported contact statuses.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusUnread, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	default:
		return false
	}
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject,omitempty"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ContactFilter narrows a contact listing.
type ContactFilter struct {
	Status *ContactStatus
	Limit  int
	Offset int
}
