package middlewares

import (
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles per client IP and temporarily blocks offenders.
// Used on the session-mint endpoint, which sits in front of the token
// check and would otherwise be free to hammer.
type RateLimiter struct {
	Log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
}

func NewRateLimiter(logger *zap.Logger, rps int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		Log:       logger,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				r.mu.Unlock()
				utils.BuildErrorResponse(r.Log, w, exceptions.ErrTooManyRequests())
				return
			}
			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.Allow() {
			r.mu.Lock()
			r.blocked[ip] = time.Now().Add(r.blockTime)
			r.mu.Unlock()

			utils.BuildErrorResponse(r.Log, w, exceptions.ErrTooManyRequests())
			return
		}

		next.ServeHTTP(w, req)
	})
}
