package service

import (
	"context"
	"errors"
	"time"

	"github.com/mbraun/identity/internal/identity/domain"
	"github.com/mbraun/identity/internal/identity/store"
	"github.com/mbraun/identity/pkg/idx"
)

// RolesService owns role lifecycle rules: name uniqueness on creation and
// cascading detachment on deletion.
type RolesService struct {
	Store store.Store
}

// ListRoles returns all roles in the system.
func (s *RolesService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}

// GetRoleByName fetches a role by its unique name.
func (s *RolesService) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	role, err := s.Store.Roles().GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Role{}, notFoundf("No role with name: %s exists.", name)
		}
		return domain.Role{}, err
	}
	return role, nil
}

// CreateRole persists a new role. Fails with a Conflict when the name is
// already taken (case-sensitive, exact match).
func (s *RolesService) CreateRole(ctx context.Context, name string) (domain.Role, error) {
	exists, err := s.Store.Roles().ExistsByName(ctx, name)
	if err != nil {
		return domain.Role{}, err
	}
	if exists {
		return domain.Role{}, conflictf("Role with name: %s already exists.", name)
	}

	role := domain.Role{
		ID:        idx.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Roles().Create(ctx, role); err != nil {
		return domain.Role{}, err
	}
	return role, nil
}

// DeleteRoleByName detaches the role from every user holding it and then
// deletes the role record, all in one transaction. No user can observe a
// dangling role reference after this returns, and the deletion cannot
// proceed while detachment is incomplete (the schema rejects it).
func (s *RolesService) DeleteRoleByName(ctx context.Context, name string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		role, err := tx.Roles().GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFoundf("No role with name: %s exists.", name)
			}
			return err
		}

		if err := tx.Roles().DetachFromUsers(ctx, role.ID); err != nil {
			return err
		}
		return tx.Roles().Delete(ctx, role.ID)
	})
}
