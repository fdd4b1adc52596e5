package backend

import (
	"sync"
	"time"
)

// Token lifetime handling: the backend issues tokens valid for 15 minutes;
// we treat them as expired one minute early so in-flight requests do not race
// the real expiry.
const (
	tokenLifetime     = 15 * time.Minute
	tokenSafetyMargin = time.Minute
)

// tokenCache holds the single service bearer token and its expiry. Access is
// mutex-guarded, but callers deliberately do not hold the lock across a login
// round-trip: two concurrent expired observers may both re-authenticate and
// the last write wins.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// get returns the cached token, or false if none is cached or it has expired.
func (c *tokenCache) get() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == "" || time.Now().After(c.expiresAt) {
		return "", false
	}
	return c.token, true
}

// set caches a freshly issued token with the safety-margin expiry.
func (c *tokenCache) set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.expiresAt = time.Now().Add(tokenLifetime - tokenSafetyMargin)
}

// invalidate drops the cached token, forcing a login on the next request.
func (c *tokenCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiresAt = time.Time{}
}
