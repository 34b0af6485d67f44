package domain

import "time"

// Role is a named permission group assignable to users. The name is unique
// across all roles (case-sensitive). Roles are immutable once created; the
// only mutation is deletion, which detaches the role from every holder.
type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
