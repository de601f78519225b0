package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/pkg/logger"
)

const traceHeader = "X-Trace-ID"

// RequestID honors an incoming X-Trace-ID or mints one, echoes it on the
// response and stores a logger carrying it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		w.Header().Set(traceHeader, traceID)

		ctx := logger.With(r.Context(), "trace_id", traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
