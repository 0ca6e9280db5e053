package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMemoryAttemptStore(t *testing.T) {
	t.Run("allows up to the limit per key", func(t *testing.T) {
		store := newMemoryAttemptStore(3, time.Hour)

		assert.True(t, store.Allow("1.2.3.4"))
		assert.True(t, store.Allow("1.2.3.4"))
		assert.True(t, store.Allow("1.2.3.4"))
		assert.False(t, store.Allow("1.2.3.4"))

		// Other clients keep their own window.
		assert.True(t, store.Allow("5.6.7.8"))
	})

	t.Run("expired window resets the count", func(t *testing.T) {
		store := newMemoryAttemptStore(1, 10*time.Millisecond)

		assert.True(t, store.Allow("1.2.3.4"))
		assert.False(t, store.Allow("1.2.3.4"))

		time.Sleep(20 * time.Millisecond)

		assert.True(t, store.Allow("1.2.3.4"))
	})
}

type denyAllStore struct{}

func (denyAllStore) Allow(string) bool { return false }

func TestLoginLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked request gets 429 and never reaches the handler", func(t *testing.T) {
		router := gin.New()
		handlerHit := false
		router.POST("/login", NewLoginLimiterWithStore(denyAllStore{}).Limit(), func(ctx *gin.Context) {
			handlerHit = true
			ctx.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.False(t, handlerHit)
		assert.JSONEq(t, `{"error":"too many login attempts, please try again later"}`, rec.Body.String())
	})

	t.Run("allowed request passes through", func(t *testing.T) {
		router := gin.New()
		router.POST("/login", NewLoginLimiter().Limit(), func(ctx *gin.Context) {
			ctx.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
