package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"evalhub/internal/requestctx"
)

// RequestID tags every request with a UUID and echoes it back in the
// X-Request-ID header. An inbound id is reused only when it is itself a
// well-formed UUID; anything else is replaced.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := requestctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	return requestctx.GetRequestID(ctx)
}
