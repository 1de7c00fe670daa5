package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vango-dev/ariaid/pkg/ids"
)

func TestLoggerWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Allocator()(Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alloc, _ := ids.FromContext(r.Context())
		alloc.Generate("dialog", "title")
		w.WriteHeader(http.StatusNotFound)
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["msg"] != "request" || line["level"] != "WARN" {
		t.Fatalf("unexpected log line: %v", line)
	}
	if line["component"] != "http" || line["path"] != "/missing" {
		t.Fatalf("unexpected log line: %v", line)
	}
	if line["status"] != float64(404) || line["ids"] != float64(1) {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestLoggerNilFallsBackToDefault(t *testing.T) {
	h := Logger(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
