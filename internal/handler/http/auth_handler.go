package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/handler/http/dto"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AuthHandlerInterface defines the methods for the auth handler to allow
// interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Signup(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	HandleGoogleLogin(*gin.Context)
	HandleGoogleCallback(*gin.Context)
}

// Ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
	config      usecasecontract.IConfigProvider
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase, config usecasecontract.IConfigProvider) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      config,
	}
}

// Signup handles member registration
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.authUsecase.Signup(c.Request.Context(), req.Email, req.Password, req.Name, req.Location)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserResponse(*user),
		Token: token,
	})
}

// Login handles member authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(*user),
		Token: token,
	})
}

// Logout acknowledges a logout. Tokens are stateless, so there is no
// server-side session to invalidate; the client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	MessageHandler(c, http.StatusOK, "Logged out")
}

func (h *AuthHandler) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.config.GetGoogleClientID(),
		ClientSecret: h.config.GetGoogleClientSecret(),
		RedirectURL:  h.config.GetAppBaseURL() + "/api/v1/auth/google/callback",
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// googleUserInfo is the subset of the userinfo payload we read.
type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// HandleGoogleLogin redirects to Google's consent page with a CSRF state cookie.
func (h *AuthHandler) HandleGoogleLogin(c *gin.Context) {
	b := make([]byte, 16)
	rand.Read(b)
	oauthState := base64.URLEncoding.EncodeToString(b)
	c.SetCookie("oauthState", oauthState, 300, "/", "", false, true)

	url := h.googleOauthConfig().AuthCodeURL(oauthState)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// HandleGoogleCallback exchanges the authorization code and signs the user in.
func (h *AuthHandler) HandleGoogleCallback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie("oauthState")
	if err != nil || state != cookieState {
		ErrorHandler(c, http.StatusUnauthorized, "invalid CSRF state token")
		return
	}
	c.SetCookie("oauthState", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		ErrorHandler(c, http.StatusBadRequest, "authorization code not provided")
		return
	}

	requestCtx := c.Request.Context()

	token, err := h.googleOauthConfig().Exchange(requestCtx, code)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, fmt.Sprintf("failed to exchange authorization code: %v", err))
		return
	}

	client := h.googleOauthConfig().Client(requestCtx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, fmt.Sprintf("failed to get user info: %v", err))
		return
	}
	defer resp.Body.Close()

	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to decode user info")
		return
	}
	name := strings.TrimSpace(userInfo.Name)
	if name == "" {
		name = userInfo.Email
	}

	user, appToken, err := h.authUsecase.LoginWithOAuth(requestCtx, name, userInfo.Email)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(*user),
		Token: appToken,
	})
}
