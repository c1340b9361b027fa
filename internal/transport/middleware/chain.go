package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws into one Middleware, first argument outermost:
// Chain(a, b)(h) is a(b(h)). Nil entries are skipped, so optional layers
// such as the rate limiter can be passed unconditionally.
func Chain(mws ...Middleware) Middleware {
	active := make([]Middleware, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			active = append(active, mw)
		}
	}

	return func(next http.Handler) http.Handler {
		for i := len(active) - 1; i >= 0; i-- {
			next = active[i](next)
		}
		return next
	}
}
