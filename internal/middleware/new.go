package middleware

import (
	"email-task-assistant/config"
	"email-task-assistant/pkg/log"
	"email-task-assistant/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
	origins    []string
}

func New(l log.Logger, jwtManager scope.Manager, rl config.RateLimitConfig, allowedOrigins []string) Middleware {
	mw := Middleware{
		l:          l,
		jwtManager: jwtManager,
		origins:    allowedOrigins,
	}
	if rl.Enabled {
		mw.limiter = newRateLimiter(rl.RequestsPerMin, rl.MaxTrackedUsers)
	}
	return mw
}
