package middleware

import (
	"teamboard/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l              log.Logger
	allowedOrigins []string
}

func New(l log.Logger, allowedOrigins []string) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: allowedOrigins,
	}
}
