package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	logs []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "DEBUG", Message: msg, Fields: fields})
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "INFO", Message: msg, Fields: fields})
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "WARN", Message: msg, Fields: fields})
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "ERROR", Message: msg, Fields: fields})
}

func TestRequestLoggingMiddleware_LogsRequestMethodAndPath(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/transform?debug=1", nil)
	req.Header.Set("User-Agent", "studio-test")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Len(t, logger.logs, 2)

	started := logger.logs[0]
	assert.Equal(t, "INFO", started.Level)
	assert.Equal(t, "Request started", started.Message)
	assert.Equal(t, http.MethodPost, started.Fields["method"])
	assert.Equal(t, "/transform", started.Fields["path"])
	assert.Equal(t, "studio-test", started.Fields["user_agent"])

	completed := logger.logs[1]
	assert.Equal(t, "Request completed", completed.Message)
	assert.Equal(t, http.StatusOK, completed.Fields["status"])
	assert.Contains(t, completed.Fields, "duration_ms")
}

func TestRequestLoggingMiddleware_LogsServerErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantErrLog bool
	}{
		{"success", http.StatusOK, false},
		{"client error", http.StatusUnprocessableEntity, false},
		{"server error", http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &MockLogger{}
			handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/read", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.status, logger.logs[1].Fields["status"])

			last := logger.logs[len(logger.logs)-1]
			if tt.wantErrLog {
				assert.Equal(t, "ERROR", last.Level)
				assert.Equal(t, "Request failed with server error", last.Message)
			} else {
				assert.Len(t, logger.logs, 2)
			}
		})
	}
}

func TestRequestLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	logger := &MockLogger{}
	var seen string
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/topics", nil))

	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Len(t, id, 36)
	assert.Equal(t, id, seen)
	assert.Equal(t, id, logger.logs[0].Fields["request_id"])
	assert.Equal(t, id, logger.logs[1].Fields["request_id"])
}

func TestRequestLoggingMiddleware_ReusesIncomingRequestID(t *testing.T) {
	logger := &MockLogger{}
	var seen string
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/discover", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-42", seen)
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNotFound, rw.statusCode)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	_, err := rw.Write([]byte("ok"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.True(t, rw.written)
	assert.Equal(t, "ok", rec.Body.String())
}
