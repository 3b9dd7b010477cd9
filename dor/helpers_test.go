package dor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

const testDruid = "druid:bc123df4567"

// newTestClient starts a server backed by handler and returns a client for it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Config{
		URL:    server.URL,
		Token:  "123",
		Logger: zerolog.Nop(),
	})
}

// statusHandler answers every request with status and body.
func statusHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func notFoundMessage(objectID string) string {
	msg := "Not Found: 404 (" + DefaultBody + ")"
	if objectID != "" {
		msg += " for " + objectID
	}
	return msg
}
