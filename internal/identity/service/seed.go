package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mbraun/identity/internal/identity/domain"
	"github.com/mbraun/identity/internal/identity/store"
	"github.com/mbraun/identity/pkg/cryptox"
	"github.com/mbraun/identity/pkg/idx"
	"github.com/mbraun/identity/pkg/slogx"
)

// SeedService writes the startup dataset through the normal store, replacing
// what used to be process-wide hard-coded accounts. It only runs against an
// empty store.
type SeedService struct {
	Store store.Store
}

// Run seeds roles and users when the user table is empty. A non-empty store
// is left untouched.
func (s *SeedService) Run(ctx context.Context, data domain.SeedData) error {
	l := slogx.FromContext(ctx)

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		l.Info("store already populated, skipping seed")
		return nil
	}

	// Hash outside the transaction; bcrypt is deliberately slow.
	hashes := make(map[string]string, len(data.Users))
	for _, su := range data.Users {
		hash, err := cryptox.HashPassword(su.Password)
		if err != nil {
			return fmt.Errorf("seed: hash password for %s: %w", su.Email, err)
		}
		hashes[su.Email] = hash
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		now := time.Now().UTC()

		roleIDs := make(map[string]string, len(data.Roles)) // name to id
		for _, name := range data.Roles {
			role := domain.Role{ID: idx.New().String(), Name: name, CreatedAt: now}
			if err := tx.Roles().Create(ctx, role); err != nil {
				return fmt.Errorf("seed: create role %s: %w", name, err)
			}
			roleIDs[name] = role.ID
		}

		for _, su := range data.Users {
			user := domain.User{
				ID:           idx.New().String(),
				Email:        su.Email,
				FullName:     su.FullName,
				PasswordHash: hashes[su.Email],
				CreatedAt:    now,
			}
			if err := tx.Users().Create(ctx, user); err != nil {
				return fmt.Errorf("seed: create user %s: %w", su.Email, err)
			}

			for _, roleName := range su.Roles {
				roleID, ok := roleIDs[roleName]
				if !ok {
					return fmt.Errorf("seed: user %s references undefined role %s", su.Email, roleName)
				}
				if err := tx.Users().AddRole(ctx, user.ID, roleID); err != nil {
					return fmt.Errorf("seed: assign role %s to %s: %w", roleName, su.Email, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.Info("seeded store",
		slog.Int("roles", len(data.Roles)),
		slog.Int("users", len(data.Users)),
	)
	return nil
}
