package ticket

import (
	"fmt"
	"time"

	"propflow/internal/shared/authorization"
	"propflow/internal/shared/biztime"
)

// Note is one entry in a ticket's append-only audit log. Every lifecycle
// transition appends a note; entries are never edited or deleted.
type Note struct {
	id         uint
	ticketID   uint
	authorID   uint
	authorRole authorization.UserRole
	text       string
	createdAt  time.Time
}

func NewNote(
	ticketID uint,
	authorID uint,
	authorRole authorization.UserRole,
	text string,
) (*Note, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", authorRole)
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("note text cannot be empty")
	}
	if len(text) > 5000 {
		return nil, fmt.Errorf("note text exceeds maximum length of 5000 characters")
	}

	return &Note{
		ticketID:   ticketID,
		authorID:   authorID,
		authorRole: authorRole,
		text:       text,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructNote(
	id uint,
	ticketID uint,
	authorID uint,
	authorRole authorization.UserRole,
	text string,
	createdAt time.Time,
) (*Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("note ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Note{
		id:         id,
		ticketID:   ticketID,
		authorID:   authorID,
		authorRole: authorRole,
		text:       text,
		createdAt:  createdAt,
	}, nil
}

func (n *Note) ID() uint {
	return n.id
}

func (n *Note) TicketID() uint {
	return n.ticketID
}

func (n *Note) AuthorID() uint {
	return n.authorID
}

func (n *Note) AuthorRole() authorization.UserRole {
	return n.authorRole
}

func (n *Note) Text() string {
	return n.text
}

func (n *Note) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}
