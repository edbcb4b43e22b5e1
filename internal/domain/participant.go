package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantRole distinguishes the trip owner from invited participants.
type ParticipantRole string

const (
	RoleOwner       ParticipantRole = "owner"
	RoleParticipant ParticipantRole = "participant"
)

// ValidRole reports whether r is one of the defined participant roles.
func ValidRole(r ParticipantRole) bool {
	return r == RoleOwner || r == RoleParticipant
}

// Participant is one person attached to a trip. A participant belongs to
// exactly one trip; Email is optional.
type Participant struct {
	ID       uuid.UUID       `json:"id"`
	TripID   uuid.UUID       `json:"trip_id"`
	Name     string          `json:"name"`
	Email    string          `json:"email,omitempty"`
	Role     ParticipantRole `json:"role"`
	JoinedAt time.Time       `json:"joined_at"`
}
