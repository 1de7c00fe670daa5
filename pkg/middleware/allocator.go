package middleware

import (
	"net/http"

	"github.com/vango-dev/ariaid/pkg/ids"
)

// Allocator returns middleware that stores a fresh ids.Allocator in each
// request's context. Handlers fetch it with ids.FromContext.
func Allocator(opts ...ids.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			alloc := ids.New(opts...)
			next.ServeHTTP(w, r.WithContext(ids.WithAllocator(r.Context(), alloc)))
		})
	}
}

// issuedIDs returns how many IDs the request's allocator handed out.
func issuedIDs(r *http.Request) int {
	alloc, ok := ids.FromContext(r.Context())
	if !ok {
		return 0
	}
	return len(alloc.Records())
}

// statusRecorder captures the response status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wrote {
		s.status = code
		s.wrote = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wrote = true
	return s.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
