package middleware

import (
	"io"
	"net/http"
)

// LimitAndDrainRequest caps the request body at maxBodyBytes. After the handler is done,
// the unread rest of the body is discarded and the body closed, so the connection can be reused.
func LimitAndDrainRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil {
				next.ServeHTTP(w, r)
				return
			}

			body := r.Body
			rest := io.Reader(body)
			if maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, body, maxBodyBytes)
				rest = io.LimitReader(body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, rest)
			_ = body.Close()
		})
	}
}
