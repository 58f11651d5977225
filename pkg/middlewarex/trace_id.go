package middlewarex

import (
	"net/http"

	"bnb_finder/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID puts the request trace id into the context and echoes it back in
// the response header. Must run before any middleware that logs.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := contextx.TraceID(r.Header.Get(headerNameTraceID))

		if traceID == "" {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
