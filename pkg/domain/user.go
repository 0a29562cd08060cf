package domain

import "github.com/google/uuid"

// UserID identifies the owner of stored ladders. Tokens carry it as the subject.
type UserID uuid.UUID

// String returns the canonical UUID text.
func (id UserID) String() string {
	return uuid.UUID(id).String()
}
