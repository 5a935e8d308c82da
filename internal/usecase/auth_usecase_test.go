package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	"github.com/wuddevdet/platform-api/internal/infrastructure/validator"
)

func newAuthUsecaseForTest(userRepo *fakeUserRepo) *AuthUsecase {
	return NewAuthUsecase(userRepo, fakeHasher{}, fakeTokenService{}, nopLogger{}, validator.NewValidator(), &seqUUIDGen{})
}

func TestSignupAcceptsEveryAllowedCity(t *testing.T) {
	uc := newAuthUsecaseForTest(newFakeUserRepo())

	for i, city := range entity.MichiganCities {
		email := fmt.Sprintf("member%d@example.com", i)
		user, token, err := uc.Signup(context.Background(), email, "Password123!", "Member", city)
		require.NoError(t, err, "city %q should be accepted", city)
		assert.NotEmpty(t, token)
		assert.Equal(t, entity.UserRoleMember, user.Role)
		assert.Equal(t, city, user.Location)
		assert.Equal(t, entity.UserStatusActive, user.Status)
	}
}

func TestSignupRejectsUnknownLocation(t *testing.T) {
	uc := newAuthUsecaseForTest(newFakeUserRepo())

	_, _, err := uc.Signup(context.Background(), "member@example.com", "Password123!", "Member", "Chicago")
	assert.Error(t, err)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	uc := newAuthUsecaseForTest(newFakeUserRepo())

	_, _, err := uc.Signup(context.Background(), "member@example.com", "Password123!", "Member", "Detroit")
	require.NoError(t, err)

	_, _, err = uc.Signup(context.Background(), "member@example.com", "OtherPass123!", "Other Member", "Flint")
	require.Error(t, err)
	assert.Equal(t, ErrMsgEmailTaken, err.Error())
}

func TestSignupRejectsShortPassword(t *testing.T) {
	uc := newAuthUsecaseForTest(newFakeUserRepo())

	_, _, err := uc.Signup(context.Background(), "member@example.com", "short", "Member", "Detroit")
	assert.Error(t, err)
}

func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	uc := newAuthUsecaseForTest(newFakeUserRepo())

	_, _, err := uc.Signup(context.Background(), "member@example.com", "Password123!", "Member", "Detroit")
	require.NoError(t, err)

	_, _, wrongPassErr := uc.Login(context.Background(), "member@example.com", "WrongPass123!")
	require.Error(t, wrongPassErr)
	_, _, unknownEmailErr := uc.Login(context.Background(), "nobody@example.com", "Password123!")
	require.Error(t, unknownEmailErr)

	assert.Equal(t, ErrMsgInvalidCredentials, wrongPassErr.Error())
	assert.Equal(t, wrongPassErr.Error(), unknownEmailErr.Error())
}

func TestLoginSucceedsWithCorrectCredentials(t *testing.T) {
	uc := newAuthUsecaseForTest(newFakeUserRepo())

	created, _, err := uc.Signup(context.Background(), "member@example.com", "Password123!", "Member", "Detroit")
	require.NoError(t, err)

	user, token, err := uc.Login(context.Background(), "member@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "token-"+created.ID, token)
}

func TestLoginRejectsSuspendedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUsecaseForTest(repo)

	created, _, err := uc.Signup(context.Background(), "member@example.com", "Password123!", "Member", "Detroit")
	require.NoError(t, err)
	repo.users[created.ID].Status = entity.UserStatusSuspended

	_, _, err = uc.Login(context.Background(), "member@example.com", "Password123!")
	require.Error(t, err)
	assert.Equal(t, ErrMsgAccountSuspended, err.Error())
}

func TestLoginWithOAuthCreatesMemberOnFirstLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUsecaseForTest(repo)

	user, token, err := uc.LoginWithOAuth(context.Background(), "New Member", "oauth@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entity.UserRoleMember, user.Role)
	assert.Equal(t, "Other", user.Location)

	again, _, err := uc.LoginWithOAuth(context.Background(), "New Member", "oauth@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Len(t, repo.users, 1)
}

func TestUpdateProfileIgnoresNonUpdatableFields(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUsecaseForTest(repo)

	created, _, err := uc.Signup(context.Background(), "member@example.com", "Password123!", "Member", "Detroit")
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(context.Background(), created.ID, map[string]interface{}{
		"name": "Renamed",
		"role": "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, entity.UserRoleMember, updated.Role)
}

func TestUpdateProfileRevalidatesLocation(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUsecaseForTest(repo)

	created, _, err := uc.Signup(context.Background(), "member@example.com", "Password123!", "Member", "Detroit")
	require.NoError(t, err)

	_, err = uc.UpdateProfile(context.Background(), created.ID, map[string]interface{}{"location": "Chicago"})
	assert.Error(t, err)

	updated, err := uc.UpdateProfile(context.Background(), created.ID, map[string]interface{}{"location": "Ann Arbor"})
	require.NoError(t, err)
	assert.Equal(t, "Ann Arbor", updated.Location)
}
