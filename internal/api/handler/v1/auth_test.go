package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibaq/festival-api/internal/api/middleware"
	"github.com/sibaq/festival-api/internal/config"
	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/pkg/jwthelper"
	"github.com/sibaq/festival-api/internal/service"
)

type stubAuthService struct {
	user     domain.User
	loginErr error
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (domain.User, error) {
	if s.loginErr != nil {
		return domain.User{}, s.loginErr
	}

	return s.user, nil
}

func authTestRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	conf := &config.APIConfig{JWTSigningKey: "test-signing-key", SecureCookies: false}
	h := NewAuthHandler(conf, svc)

	router := gin.New()
	router.POST("/auth/login", h.HandleLogin)
	router.POST("/auth/logout", h.HandleLogout)

	return router
}

func authCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.CookieName {
			return c
		}
	}

	t.Fatalf("no %s cookie in response", middleware.CookieName)

	return nil
}

func TestHandleLogin(t *testing.T) {
	t.Run("valid credentials set the auth cookie", func(t *testing.T) {
		router := authTestRouter(&stubAuthService{user: domain.User{
			ID: 1, Username: "admin", Role: domain.RoleAdmin,
		}})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"username":"admin","password":"festival2026"}`)))

		require.Equal(t, http.StatusOK, rec.Code)

		cookie := authCookie(t, rec)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, int(jwthelper.TokenLifetime.Seconds()), cookie.MaxAge)

		claims, err := jwthelper.ParseToken([]byte("test-signing-key"), cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, domain.RoleAdmin, claims.Role)

		assert.JSONEq(t,
			`{"success":true,"user":{"id":1,"username":"admin","role":"admin","created_at":"0001-01-01T00:00:00Z","updated_at":"0001-01-01T00:00:00Z"}}`,
			rec.Body.String())
	})

	t.Run("unknown user and wrong password look identical", func(t *testing.T) {
		for _, loginErr := range []error{service.ErrUserNotFound, service.ErrWrongPassword} {
			router := authTestRouter(&stubAuthService{loginErr: loginErr})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login",
				strings.NewReader(`{"username":"admin","password":"nope"}`)))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())
		}
	})

	t.Run("missing fields are rejected before the service runs", func(t *testing.T) {
		router := authTestRouter(&stubAuthService{loginErr: errStoreDown})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"username":"admin"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleLogout(t *testing.T) {
	router := authTestRouter(&stubAuthService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := authCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
