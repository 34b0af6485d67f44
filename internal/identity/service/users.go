package service

import (
	"context"
	"errors"
	"time"

	"github.com/mbraun/identity/internal/identity/domain"
	"github.com/mbraun/identity/internal/identity/store"
	"github.com/mbraun/identity/pkg/cryptox"
	"github.com/mbraun/identity/pkg/idx"
)

// UserService owns the rules governing user mutation: email uniqueness,
// password hashing and verification, and role membership. It holds no state
// of its own; atomicity is delegated to store transactions.
type UserService struct {
	Store store.Store
}

// CreateUserParams carries the caller-supplied fields for a new account.
// Password is plaintext and is hashed exactly once on the way in; it is
// never stored or logged. Roles lists role names to assign at creation.
type CreateUserParams struct {
	Email    string
	FullName string
	Password string
	Roles    []string
}

// ListUsers returns all users with their role sets. No error case beyond
// storage failure.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListAll(ctx)
}

// GetUserByEmail fetches a user by email, the external key.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := s.Store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, notFoundf("No user with email: %s exists.", email)
		}
		return domain.User{}, err
	}
	return user, nil
}

// CreateUser persists a new account after hashing the password. Fails with
// a Conflict when the email is already taken, regardless of other fields.
func (s *UserService) CreateUser(ctx context.Context, p CreateUserParams) (domain.User, error) {
	exists, err := s.Store.Users().ExistsByEmail(ctx, p.Email)
	if err != nil {
		return domain.User{}, err
	}
	if exists {
		return domain.User{}, conflictf("A user with email: %s already exists.", p.Email)
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        p.Email,
		FullName:     p.FullName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		roles, err := assignRoles(ctx, tx, user.ID, p.Roles)
		if err != nil {
			return err
		}
		user.Roles = roles
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// UpdateUser replaces the entire record keyed by p.Email. This is a
// wholesale delete-then-recreate, not a field-level merge: fields omitted by
// the caller (including the role set) are dropped.
func (s *UserService) UpdateUser(ctx context.Context, p CreateUserParams) (domain.User, error) {
	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        p.Email,
		FullName:     p.FullName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		exists, err := tx.Users().ExistsByEmail(ctx, p.Email)
		if err != nil {
			return err
		}
		if !exists {
			return notFoundf("No user with email: %s exists.", p.Email)
		}

		if err := tx.Users().DeleteByEmail(ctx, p.Email); err != nil {
			return err
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		roles, err := assignRoles(ctx, tx, user.ID, p.Roles)
		if err != nil {
			return err
		}
		user.Roles = roles
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// assignRoles resolves role names and links them to the user inside the
// caller's transaction.
func assignRoles(ctx context.Context, tx store.Tx, userID string, names []string) ([]domain.Role, error) {
	var roles []domain.Role
	for _, name := range names {
		role, err := tx.Roles().GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, notFoundf("No role with name: %s exists.", name)
			}
			return nil, err
		}
		if err := tx.Users().AddRole(ctx, userID, role.ID); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// DeleteUserByEmail removes a user and their role links.
func (s *UserService) DeleteUserByEmail(ctx context.Context, email string) error {
	exists, err := s.Store.Users().ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return notFoundf("No user with email: %s exists.", email)
	}
	return s.Store.Users().DeleteByEmail(ctx, email)
}

// DeleteAllUsers is unconditional, with no error case beyond storage failure.
func (s *UserService) DeleteAllUsers(ctx context.Context) error {
	return s.Store.Users().DeleteAll(ctx)
}

// AddRoleToUser inserts the named role into the user's role set. The
// read-check-write runs inside one transaction so concurrent membership
// changes cannot lose updates.
func (s *UserService) AddRoleToUser(ctx context.Context, email, roleName string) (domain.User, error) {
	var user domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		user, err = tx.Users().GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFoundf("No user with email: %s exists.", email)
			}
			return err
		}

		role, err := tx.Roles().GetByName(ctx, roleName)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFoundf("No role with name: %s exists.", roleName)
			}
			return err
		}

		if user.HasRole(role.ID) {
			return conflictf("User with email: %s already has role.", email)
		}

		if err := tx.Users().AddRole(ctx, user.ID, role.ID); err != nil {
			return err
		}
		user.Roles = append(user.Roles, role)
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// RemoveRoleFromUser removes the named role from the user's role set, under
// the same transaction contract as AddRoleToUser.
func (s *UserService) RemoveRoleFromUser(ctx context.Context, email, roleName string) (domain.User, error) {
	var user domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		user, err = tx.Users().GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFoundf("No user with email: %s exists.", email)
			}
			return err
		}

		role, err := tx.Roles().GetByName(ctx, roleName)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFoundf("No role with name: %s exists.", roleName)
			}
			return err
		}

		if !user.HasRole(role.ID) {
			return conflictf("The user with email: %s does not posses this role.", email)
		}

		if err := tx.Users().RemoveRole(ctx, user.ID, role.ID); err != nil {
			return err
		}

		kept := user.Roles[:0]
		for _, r := range user.Roles {
			if r.ID != role.ID {
				kept = append(kept, r)
			}
		}
		user.Roles = kept
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// VerifyPassword checks a plaintext password against a stored hash. A
// mismatch is an authentication failure, not a benign false.
func (s *UserService) VerifyPassword(enteredPassword, hashedPassword string) error {
	err := cryptox.VerifyPassword(enteredPassword, hashedPassword)
	if err == nil {
		return nil
	}
	if errors.Is(err, cryptox.ErrPasswordMismatch) {
		return invalidCredential("The entered password is incorrect.")
	}
	return err
}
