// Package ratelimiter keeps one token bucket per identity and forgets
// identities that have been idle for the expiration period.
package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter *rate.Limiter
	timer   *time.Timer
}

type UserRateLimiter struct {
	mu             sync.Mutex
	limiters       map[string]*entry
	limit          rate.Limit
	burst          int
	expirationTime time.Duration
}

// New allows rps sustained requests per identity with bursts up to burst.
func New(rps float64, burst int, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		limiters:       make(map[string]*entry),
		limit:          rate.Limit(rps),
		burst:          burst,
		expirationTime: expirationTime,
	}
}

func (u *UserRateLimiter) getLimiter(identity string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	e, ok := u.limiters[identity]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(u.limit, u.burst)}
		u.limiters[identity] = e
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(u.expirationTime, func() { u.forget(identity, e) })
	return e.limiter
}

func (u *UserRateLimiter) forget(identity string, e *entry) {
	u.mu.Lock()
	defer u.mu.Unlock()
	// a newer entry may have replaced e in the meantime
	if u.limiters[identity] == e {
		delete(u.limiters, identity)
	}
}

func (u *UserRateLimiter) Allow(identity string) bool {
	return u.getLimiter(identity).Allow()
}

// Len reports how many identities are currently tracked.
func (u *UserRateLimiter) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.limiters)
}

// Stop cancels every pending expiration timer.
func (u *UserRateLimiter) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, e := range u.limiters {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
}
