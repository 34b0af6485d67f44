package service

import (
	"context"
	"testing"

	"github.com/mbraun/identity/internal/identity/store/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	roles := &RolesService{Store: st}

	_, err := roles.CreateRole(ctx, "USER")
	require.NoError(t, err)

	created, err := users.CreateUser(ctx, CreateUserParams{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "secret",
		Roles:    []string{"USER"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotEqual(t, "secret", created.PasswordHash, "plaintext must never be stored")

	fetched, err := users.GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Jane Doe", fetched.FullName)
	require.Len(t, fetched.Roles, 1)
	require.Equal(t, "USER", fetched.Roles[0].Name)

	require.NoError(t, users.VerifyPassword("secret", fetched.PasswordHash))
}

func TestGetUserNotFound(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}

	_, err := users.GetUserByEmail(ctx, "ghost@example.com")
	require.Error(t, err)
	require.True(t, IsNotFound(err))
	require.EqualError(t, err, "No user with email: ghost@example.com exists.")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}

	_, err := users.CreateUser(ctx, CreateUserParams{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "secret",
	})
	require.NoError(t, err)

	// Same email with entirely different fields still conflicts.
	_, err = users.CreateUser(ctx, CreateUserParams{
		Email:    "jane@example.com",
		FullName: "Someone Else",
		Password: "other",
	})
	require.Error(t, err)
	require.True(t, IsConflict(err))
	require.EqualError(t, err, "A user with email: jane@example.com already exists.")
}

func TestCreateUserUnknownRoleRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}

	_, err := users.CreateUser(ctx, CreateUserParams{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "secret",
		Roles:    []string{"MISSING"},
	})
	require.Error(t, err)
	require.True(t, IsNotFound(err))
	require.EqualError(t, err, "No role with name: MISSING exists.")

	// The failed creation must not leave a partial user behind.
	_, err = users.GetUserByEmail(ctx, "jane@example.com")
	require.True(t, IsNotFound(err))
}

func TestUpdateUserReplacesRecord(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	roles := &RolesService{Store: st}

	_, err := roles.CreateRole(ctx, "USER")
	require.NoError(t, err)
	_, err = roles.CreateRole(ctx, "ADMIN")
	require.NoError(t, err)

	created, err := users.CreateUser(ctx, CreateUserParams{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "secret",
		Roles:    []string{"USER", "ADMIN"},
	})
	require.NoError(t, err)

	// Update is a wholesale replacement: the role set is whatever the
	// caller supplies now, not a merge with the old record.
	updated, err := users.UpdateUser(ctx, CreateUserParams{
		Email:    "jane@example.com",
		FullName: "Jane D.",
		Password: "newsecret",
		Roles:    []string{"USER"},
	})
	require.NoError(t, err)
	require.NotEqual(t, created.ID, updated.ID)
	require.Equal(t, "Jane D.", updated.FullName)
	require.Len(t, updated.Roles, 1)
	require.Equal(t, "USER", updated.Roles[0].Name)

	fetched, err := users.GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, updated.ID, fetched.ID)
	require.NoError(t, users.VerifyPassword("newsecret", fetched.PasswordHash))
	require.Error(t, users.VerifyPassword("secret", fetched.PasswordHash))
}

func TestUpdateUserNotFound(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}

	_, err := users.UpdateUser(ctx, CreateUserParams{
		Email:    "ghost@example.com",
		FullName: "Ghost",
		Password: "boo",
	})
	require.Error(t, err)
	require.True(t, IsNotFound(err))
	require.EqualError(t, err, "No user with email: ghost@example.com exists.")
}

func TestDeleteUserByEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}

	_, err := users.CreateUser(ctx, CreateUserParams{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "secret",
	})
	require.NoError(t, err)

	require.NoError(t, users.DeleteUserByEmail(ctx, "jane@example.com"))

	_, err = users.GetUserByEmail(ctx, "jane@example.com")
	require.True(t, IsNotFound(err))

	// Deleting again is a NotFound, not a no-op.
	err = users.DeleteUserByEmail(ctx, "jane@example.com")
	require.True(t, IsNotFound(err))
}

func TestDeleteAllUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := users.CreateUser(ctx, CreateUserParams{
			Email:    email,
			FullName: "Someone",
			Password: "secret",
		})
		require.NoError(t, err)
	}

	require.NoError(t, users.DeleteAllUsers(ctx))

	all, err := users.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestAddAndRemoveRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	roles := &RolesService{Store: st}

	_, err := roles.CreateRole(ctx, "ADMIN")
	require.NoError(t, err)

	_, err = users.CreateUser(ctx, CreateUserParams{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "secret",
	})
	require.NoError(t, err)

	after, err := users.AddRoleToUser(ctx, "jane@example.com", "ADMIN")
	require.NoError(t, err)
	require.Len(t, after.Roles, 1)
	require.Equal(t, "ADMIN", after.Roles[0].Name)

	// Adding the same role twice is a conflict.
	_, err = users.AddRoleToUser(ctx, "jane@example.com", "ADMIN")
	require.Error(t, err)
	require.True(t, IsConflict(err))
	require.EqualError(t, err, "User with email: jane@example.com already has role.")

	// Remove restores the original state.
	after, err = users.RemoveRoleFromUser(ctx, "jane@example.com", "ADMIN")
	require.NoError(t, err)
	require.Empty(t, after.Roles)

	// Removing a role the user no longer holds is a conflict.
	_, err = users.RemoveRoleFromUser(ctx, "jane@example.com", "ADMIN")
	require.Error(t, err)
	require.True(t, IsConflict(err))
	require.EqualError(t, err, "The user with email: jane@example.com does not posses this role.")
}

func TestAddRoleUnknownTargets(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	roles := &RolesService{Store: st}

	_, err := roles.CreateRole(ctx, "ADMIN")
	require.NoError(t, err)
	_, err = users.CreateUser(ctx, CreateUserParams{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "secret",
	})
	require.NoError(t, err)

	_, err = users.AddRoleToUser(ctx, "ghost@example.com", "ADMIN")
	require.True(t, IsNotFound(err))
	require.EqualError(t, err, "No user with email: ghost@example.com exists.")

	_, err = users.AddRoleToUser(ctx, "jane@example.com", "MISSING")
	require.True(t, IsNotFound(err))
	require.EqualError(t, err, "No role with name: MISSING exists.")
}

func TestVerifyPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}

	created, err := users.CreateUser(ctx, CreateUserParams{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "secret",
	})
	require.NoError(t, err)

	require.NoError(t, users.VerifyPassword("secret", created.PasswordHash))

	err = users.VerifyPassword("wrong", created.PasswordHash)
	require.Error(t, err)
	require.True(t, IsInvalidCredential(err))
	require.EqualError(t, err, "The entered password is incorrect.")
}
