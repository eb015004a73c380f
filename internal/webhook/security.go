package webhook

import (
	"crypto/subtle"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// SecurityValidator validates webhook requests
type SecurityValidator struct {
	secret      string
	rateLimiter *rateLimiter
}

func NewSecurityValidator(cfg Config) *SecurityValidator {
	return &SecurityValidator{
		secret:      cfg.Secret,
		rateLimiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}

// ValidateGitLabToken verifies GitLab webhook token
func (v *SecurityValidator) ValidateGitLabToken(token string) error {
	if v.secret == "" {
		return fmt.Errorf("webhook secret not configured")
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(v.secret)) != 1 {
		return fmt.Errorf("invalid token")
	}

	return nil
}

// CheckRateLimit enforces rate limiting
func (v *SecurityValidator) CheckRateLimit(source string) error {
	return v.rateLimiter.Allow(source)
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// rateLimiter keeps one token bucket per source, expiring idle sources.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	rl := &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Inf,
		burst: 1,
	}
	if requestsPerMin > 0 {
		rl.rate = rate.Limit(float64(requestsPerMin) / 60.0) // Per second
		rl.burst = max(1, requestsPerMin/10)
	}
	return rl
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
