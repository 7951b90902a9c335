package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// failureWindow counts login failures inside a window anchored at the
// first failure. Once the window passes, the count restarts from zero.
type failureWindow struct {
	firstFailure time.Time
	count        int
}

// attemptLimiter throttles repeated login failures per client key.
type attemptLimiter struct {
	mu      sync.Mutex
	windows map[string]failureWindow
}

func newAttemptLimiter() *attemptLimiter {
	return &attemptLimiter{windows: make(map[string]failureWindow)}
}

func (limiter *attemptLimiter) tooManyRecent(key string, now time.Time, limit int, window time.Duration) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	current, ok := limiter.windows[key]
	if !ok {
		return false
	}
	if now.Sub(current.firstFailure) >= window {
		delete(limiter.windows, key)
		return false
	}
	return current.count >= limit
}

func (limiter *attemptLimiter) addFailure(key string, now time.Time, window time.Duration) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	current, ok := limiter.windows[key]
	if !ok || now.Sub(current.firstFailure) >= window {
		limiter.windows[key] = failureWindow{firstFailure: now, count: 1}
		return
	}
	current.count++
	limiter.windows[key] = current
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.windows, key)
}

func requestLimiterKey(c *fiber.Ctx) string {
	key := strings.TrimSpace(c.IP())
	if key == "" {
		return "unknown"
	}
	return key
}
