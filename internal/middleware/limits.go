package middleware

import (
	"net/http"
	"time"
)

// Common size limits
const (
	KB = 1024
	MB = 1024 * KB

	// DefaultMaxBodySize is the default maximum request body size (10MB)
	DefaultMaxBodySize = 10 * MB

	// UploadMaxBodySize is for multipart product/category submissions that
	// carry image files (50MB)
	UploadMaxBodySize = 50 * MB

	// DefaultTimeout is the default request processing timeout
	DefaultTimeout = 30 * time.Second
)

// MaxBodySize limits the size of request bodies.
// If no size is provided, DefaultMaxBodySize (10MB) is used.
// If the request body exceeds maxBytes, it returns 413 Request Entity Too Large.
func MaxBodySize(maxBytes ...int64) func(http.Handler) http.Handler {
	limit := int64(DefaultMaxBodySize)
	if len(maxBytes) > 0 {
		limit = maxBytes[0]
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength > limit {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout bounds request processing. Handlers that overrun get their context
// cancelled and the client receives 503.
func Timeout(timeout ...time.Duration) func(http.Handler) http.Handler {
	duration := DefaultTimeout
	if len(timeout) > 0 {
		duration = timeout[0]
	}

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, duration, "Request timed out")
	}
}
