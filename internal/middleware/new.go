package middleware

import (
	"bbip/pkg/log"
	"bbip/pkg/scope"
)

// Config holds the knobs of the HTTP middleware chain.
type Config struct {
	// RateLimitPerMin is the per-client request budget for rate-limited routes.
	RateLimitPerMin int
	AllowedOrigins  []string
	Environment     string
}

type Middleware struct {
	l              log.Logger
	jwtManager     scope.Manager
	limiter        *rateLimiter
	allowedOrigins []string
	environment    string
}

func New(l log.Logger, jwtManager scope.Manager, cfg Config) Middleware {
	return Middleware{
		l:              l,
		jwtManager:     jwtManager,
		limiter:        newRateLimiter(cfg.RateLimitPerMin),
		allowedOrigins: cfg.AllowedOrigins,
		environment:    cfg.Environment,
	}
}
