package chk

import (
	"net/http"

	json "github.com/goccy/go-json"
)

// StatusHandler returns an [http.Handler] that reports the state of all
// checks registered with reg. It responds with 200 OK when every check
// is healthy and 503 Service Unavailable otherwise. The response body
// is always a JSON-encoded [WatchStatus].
func StatusHandler(reg *Registry) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		status := reg.Snapshot()

		writer.Header().Set("Content-Type", "application/json")

		if status.Healthy {
			writer.WriteHeader(http.StatusOK)
		} else {
			writer.WriteHeader(http.StatusServiceUnavailable)
		}

		//nolint:errcheck // best-effort JSON encoding to HTTP response
		_ = json.NewEncoder(writer).Encode(status)
	})
}
