package domain

import "time"

// User is an account record. Email acts as the external-facing unique key
// for all lookups; ID is opaque and immutable after creation.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string // bcrypt encoded, never the plaintext
	CreatedAt    time.Time
	Roles        []Role // unordered set, no duplicates
}

// HasRole reports whether the user's role set contains the role with the
// given ID. Membership is by identity, not name.
func (u User) HasRole(roleID string) bool {
	for _, r := range u.Roles {
		if r.ID == roleID {
			return true
		}
	}
	return false
}
