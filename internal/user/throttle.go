package user

import (
	"time"

	"golang.org/x/time/rate"
)

// Defaults for failed-login throttling: a burst of 5 failures, then one more
// attempt every 12 seconds.
const (
	DefaultLoginRate  = 5.0 // attempts per minute
	DefaultLoginBurst = 5

	attemptTTL = 3 * time.Minute
)

// attempt holds the rate limiter and the last time it was charged.
type attempt struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter throttles failed logins per username. Only failures are charged;
// a successful login clears the key. Not safe for concurrent use.
type LoginLimiter struct {
	limit    rate.Limit
	burst    int
	attempts map[string]*attempt
	now      func() time.Time
}

// NewLoginLimiter allows burst failures and refills perMinute per minute.
// A non-positive perMinute or burst disables throttling.
func NewLoginLimiter(perMinute float64, burst int) *LoginLimiter {
	return &LoginLimiter{
		limit:    rate.Limit(perMinute / 60),
		burst:    burst,
		attempts: make(map[string]*attempt),
		now:      time.Now,
	}
}

func (l *LoginLimiter) disabled() bool {
	return l == nil || l.limit <= 0 || l.burst <= 0
}

// Blocked reports whether key has used up its failure budget.
func (l *LoginLimiter) Blocked(key string) bool {
	if l.disabled() {
		return false
	}
	a, ok := l.attempts[key]
	if !ok {
		return false
	}
	return a.limiter.TokensAt(l.now()) < 1
}

// Fail charges one failed attempt against key.
func (l *LoginLimiter) Fail(key string) {
	if l.disabled() {
		return
	}
	now := l.now()
	l.cleanup(now)

	a, ok := l.attempts[key]
	if !ok {
		a = &attempt{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.attempts[key] = a
	}
	a.lastSeen = now
	a.limiter.AllowN(now, 1)
}

// Reset forgets key after a successful login.
func (l *LoginLimiter) Reset(key string) {
	if l.disabled() {
		return
	}
	delete(l.attempts, key)
}

// cleanup removes keys idle for longer than attemptTTL.
func (l *LoginLimiter) cleanup(now time.Time) {
	for key, a := range l.attempts {
		if now.Sub(a.lastSeen) > attemptTTL {
			delete(l.attempts, key)
		}
	}
}
