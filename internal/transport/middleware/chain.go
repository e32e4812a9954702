package middleware

import "net/http"

// Middleware wraps an http.Handler with extra behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds the given middleware into one. The first argument becomes the
// outermost wrapper: Chain(a, b)(h) serves a(b(h)), so a sees the request
// before b does.
func Chain(mws ...Middleware) Middleware {
	return func(inner http.Handler) http.Handler {
		wrapped := inner
		for i := len(mws) - 1; i >= 0; i-- {
			wrapped = mws[i](wrapped)
		}
		return wrapped
	}
}
