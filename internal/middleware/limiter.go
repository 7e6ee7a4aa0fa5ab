package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per client IP. Login and registration
// endpoints get a much smaller bucket than the rest of the API.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	general rate.Limit
	burst   int

	strictPaths map[string]bool
	strict      rate.Limit
	strictBurst int
}

type visitor struct {
	general  *rate.Limiter
	strict   *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		general:  rate.Limit(100.0 / 60.0), // 100 requests per minute
		burst:    100,
		strictPaths: map[string]bool{
			"/api/auth/login":    true,
			"/api/auth/register": true,
			"/api/admin/login":   true,
		},
		strict:      rate.Limit(10.0 / 60.0), // 10 attempts per minute
		strictBurst: 10,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := rl.visitor(clientIP(r))

		limiter := v.general
		if rl.strictPaths[r.URL.Path] {
			limiter = v.strict
		}

		if !limiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{"error": "too many requests, slow down"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) visitor(ip string) *visitor {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{
			general: rate.NewLimiter(rl.general, rl.burst),
			strict:  rate.NewLimiter(rl.strict, rl.strictBurst),
		}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v
}

// cleanup drops visitors idle for more than ten minutes.
func (rl *RateLimiter) cleanup() {
	for range time.Tick(time.Minute) {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 10*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
