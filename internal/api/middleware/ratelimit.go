package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sibaq/festival-api/internal/api/handler/v1/response"
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

// AttemptStore counts login attempts per client key. The interface exists so
// a shared counter (Redis) can replace the in-process store when running
// more than one instance.
type AttemptStore interface {
	Allow(key string) bool
}

// LoginLimiter throttles the login endpoint: at most loginAttemptLimit
// attempts per client address per loginAttemptWindow.
type LoginLimiter struct {
	store AttemptStore
}

func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		store: newMemoryAttemptStore(loginAttemptLimit, loginAttemptWindow),
	}
}

func NewLoginLimiterWithStore(store AttemptStore) *LoginLimiter {
	return &LoginLimiter{
		store: store,
	}
}

func (l *LoginLimiter) Limit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.store.Allow(ctx.ClientIP()) {
			response.RenderErr(ctx, response.ErrTooManyRequests())
			return
		}

		ctx.Next()
	}
}

// memoryAttemptStore is a fixed-window counter. Expired windows are dropped
// on access and swept whenever the map grows past sweepThreshold, so the map
// stays bounded by active clients.
type memoryAttemptStore struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	windows map[string]*attemptWindow
}

type attemptWindow struct {
	count int
	start time.Time
}

const sweepThreshold = 1024

func newMemoryAttemptStore(limit int, window time.Duration) *memoryAttemptStore {
	return &memoryAttemptStore{
		limit:   limit,
		window:  window,
		windows: make(map[string]*attemptWindow),
	}
}

func (s *memoryAttemptStore) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	if len(s.windows) > sweepThreshold {
		s.sweep(now)
	}

	w := s.windows[key]
	if w == nil || now.Sub(w.start) >= s.window {
		s.windows[key] = &attemptWindow{count: 1, start: now}
		return true
	}

	w.count++

	return w.count <= s.limit
}

func (s *memoryAttemptStore) sweep(now time.Time) {
	for key, w := range s.windows {
		if now.Sub(w.start) >= s.window {
			delete(s.windows, key)
		}
	}
}
