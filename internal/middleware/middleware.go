package middleware

import (
	appcontext "github.com/nis6tech/certify/internal/app_context"
	ratelimiter "github.com/nis6tech/certify/internal/rate_limiter"
)

type Middleware struct {
	rateLimiter *ratelimiter.FixedWindowRateLimiter
	app         *appcontext.Application
}

func NewMiddleware(app *appcontext.Application, rateLimiter *ratelimiter.FixedWindowRateLimiter) *Middleware {
	return &Middleware{
		rateLimiter: rateLimiter,
		app:         app,
	}
}
