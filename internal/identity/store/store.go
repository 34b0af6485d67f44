package store

import (
	"context"
	"errors"

	"github.com/mbraun/identity/internal/identity/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable. The
// repositories are pure storage facades: absence maps to ErrNotFound and no
// business rules are enforced here.
type Store interface {
	Users() Users
	Roles() Roles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g. cascading
	// role deletion). The caller MUST call Commit() or Rollback().
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// ListAll returns every user with their role sets attached.
	ListAll(ctx context.Context) ([]domain.User, error)

	// GetByEmail returns a user (with roles) by email, the external key.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// ExistsByEmail reports whether a user with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new user (id is provided by the caller via ULID).
	Create(ctx context.Context, u domain.User) error

	// DeleteByEmail removes a user; their role links cascade per schema.
	// Deleting an absent email is a no-op at this layer; callers check first.
	DeleteByEmail(ctx context.Context, email string) error

	// DeleteAll removes every user and their role links.
	DeleteAll(ctx context.Context) error

	// AddRole links a role to a user's role set.
	AddRole(ctx context.Context, userID, roleID string) error

	// RemoveRole unlinks a role from a user's role set.
	RemoveRole(ctx context.Context, userID, roleID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Roles interface {
	// ListAll returns all roles in the system.
	ListAll(ctx context.Context) ([]domain.Role, error)

	// GetByName fetches a role by its unique name.
	GetByName(ctx context.Context, name string) (domain.Role, error)

	// ExistsByName reports whether a role with the name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create inserts a new role (id is provided by the caller via ULID).
	Create(ctx context.Context, r domain.Role) error

	// Delete removes a role record. The schema rejects deletion while any
	// user still holds the role; callers detach first (see DetachFromUsers).
	Delete(ctx context.Context, roleID string) error

	// DetachFromUsers removes the role from every user's role set.
	DetachFromUsers(ctx context.Context, roleID string) error

	// IsEmpty returns true if there are no roles.
	IsEmpty(ctx context.Context) (bool, error)
}
