package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Users are immutable after
// registration: there is no profile update or deletion.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	// Admin grants an override on per-record ownership checks.
	Admin        bool
	RegisteredAt time.Time
}

// CanModify reports whether the user is allowed to mutate a record owned by
// ownerID. Admins may modify anything; unowned records (nil owner) may be
// modified by any authenticated user.
func (u *User) CanModify(ownerID *uuid.UUID) bool {
	if u.Admin {
		return true
	}
	if ownerID == nil {
		return true
	}
	return *ownerID == u.ID
}
