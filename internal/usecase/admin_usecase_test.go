package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

func seedUser(repo *fakeUserRepo, id string, role entity.UserRole) *entity.User {
	user := &entity.User{
		ID:     id,
		Email:  id + "@example.com",
		Name:   id,
		Role:   role,
		Status: entity.UserStatusActive,
	}
	repo.users[id] = user
	return user
}

func TestDeleteUserBlocksSelfDeletion(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "admin-1", entity.UserRoleAdmin)
	uc := NewAdminUsecase(repo, nopLogger{})

	err := uc.DeleteUser(context.Background(), "admin-1", "admin-1")
	require.Error(t, err)
	assert.Equal(t, ErrMsgSelfDelete, err.Error())
	assert.Contains(t, repo.users, "admin-1")
}

func TestDeleteUserRemovesOtherAccounts(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "admin-1", entity.UserRoleAdmin)
	seedUser(repo, "member-1", entity.UserRoleMember)
	uc := NewAdminUsecase(repo, nopLogger{})

	err := uc.DeleteUser(context.Background(), "admin-1", "member-1")
	require.NoError(t, err)
	assert.NotContains(t, repo.users, "member-1")
}

func TestUpdateUserRoleValidatesEnum(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "member-1", entity.UserRoleMember)
	uc := NewAdminUsecase(repo, nopLogger{})

	_, err := uc.UpdateUserRole(context.Background(), "member-1", "superuser")
	assert.Error(t, err)

	promoted, err := uc.UpdateUserRole(context.Background(), "member-1", "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleAdmin, promoted.Role)

	demoted, err := uc.UpdateUserRole(context.Background(), "member-1", "member")
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleMember, demoted.Role)
}
