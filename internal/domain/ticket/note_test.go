package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propflow/internal/shared/authorization"
)

func TestNewNote_Valid(t *testing.T) {
	note, err := NewNote(1, 5, authorization.RoleMaintenance, "Replaced the washer, monitoring for leaks")
	require.NoError(t, err)

	assert.Equal(t, uint(1), note.TicketID())
	assert.Equal(t, uint(5), note.AuthorID())
	assert.Equal(t, authorization.RoleMaintenance, note.AuthorRole())
	assert.Equal(t, "Replaced the washer, monitoring for leaks", note.Text())
	assert.False(t, note.CreatedAt().IsZero())
	assert.Zero(t, note.ID())
}

func TestNewNote_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		authorID uint
		role     authorization.UserRole
		text     string
		wantErr  string
	}{
		{"zero ticket", 0, 5, authorization.RoleTenant, "text", "ticket ID is required"},
		{"zero author", 1, 0, authorization.RoleTenant, "text", "author ID is required"},
		{"bad role", 1, 5, authorization.UserRole("visitor"), "text", "invalid author role"},
		{"empty text", 1, 5, authorization.RoleTenant, "", "cannot be empty"},
		{"text too long", 1, 5, authorization.RoleTenant, strings.Repeat("a", 5001), "exceeds maximum length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			note, err := NewNote(tc.ticketID, tc.authorID, tc.role, tc.text)
			require.Error(t, err)
			assert.Nil(t, note)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNote_SetID(t *testing.T) {
	note, err := NewNote(1, 5, authorization.RoleAdmin, "text")
	require.NoError(t, err)

	require.NoError(t, note.SetID(9))
	assert.Equal(t, uint(9), note.ID())

	require.Error(t, note.SetID(10), "id can only be set once")
}
