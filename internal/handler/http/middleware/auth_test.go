package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

type stubTokenService struct {
	claims *entity.Claims
	err    error
}

func (s *stubTokenService) GenerateToken(userID string, role entity.UserRole) (string, error) {
	return "stub-token", nil
}

func (s *stubTokenService) ParseToken(tokenStr string) (*entity.Claims, error) {
	return s.claims, s.err
}

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) CreateUser(ctx context.Context, user *entity.User) error { return nil }
func (s *stubUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, errors.New("user not found")
	}
	return s.user, nil
}
func (s *stubUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.New("user not found")
}
func (s *stubUserRepo) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUserRepo) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) UpdateUserRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) DeleteUser(ctx context.Context, id string) error { return nil }
func (s *stubUserRepo) CountUsers(ctx context.Context) (int64, error)   { return 0, nil }

func authRouter(tokens *stubTokenService, users *stubUserRepo) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens, users), func(c *gin.Context) {
		user, _ := c.Get("currentUser")
		c.JSON(http.StatusOK, user)
	})
	r.GET("/admin", AuthMiddleware(tokens, users), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := authRouter(&stubTokenService{}, &stubUserRepo{})

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Basic abc").Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := authRouter(&stubTokenService{err: errors.New("expired")}, &stubUserRepo{})

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Bearer bad-token").Code)
}

func TestAuthMiddlewareDeletedUser(t *testing.T) {
	tokens := &stubTokenService{claims: &entity.Claims{UserID: "gone-user", Role: entity.UserRoleMember}}
	r := authRouter(tokens, &stubUserRepo{})

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Bearer token").Code)
}

func TestAuthMiddlewareAttachesUser(t *testing.T) {
	user := &entity.User{ID: "member-1", Name: "Member", Role: entity.UserRoleMember}
	tokens := &stubTokenService{claims: &entity.Claims{UserID: "member-1", Role: entity.UserRoleMember}}
	r := authRouter(tokens, &stubUserRepo{user: user})

	w := get(r, "/me", "Bearer token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "member-1")
}

func TestRequireAdmin(t *testing.T) {
	member := &entity.User{ID: "member-1", Role: entity.UserRoleMember}
	memberTokens := &stubTokenService{claims: &entity.Claims{UserID: "member-1", Role: entity.UserRoleMember}}
	r := authRouter(memberTokens, &stubUserRepo{user: member})
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", "Bearer token").Code)

	admin := &entity.User{ID: "admin-1", Role: entity.UserRoleAdmin}
	adminTokens := &stubTokenService{claims: &entity.Claims{UserID: "admin-1", Role: entity.UserRoleAdmin}}
	r = authRouter(adminTokens, &stubUserRepo{user: admin})
	assert.Equal(t, http.StatusOK, get(r, "/admin", "Bearer token").Code)
}
