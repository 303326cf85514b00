package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"studio-app-api/core/interfaces"
)

// testHTTPClient adapts net/http to interfaces.HTTPClient for httptest servers
type testHTTPClient struct {
	mu       sync.Mutex
	requests []string
}

func (c *testHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	c.mu.Lock()
	c.requests = append(c.requests, url)
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	return &testResponse{resp: resp}, nil
}

func (c *testHTTPClient) PostJSON(ctx context.Context, url string, payload interface{}) (interfaces.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	return &testResponse{resp: resp}, nil
}

func (c *testHTTPClient) Requests() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.requests...)
}

type testResponse struct {
	resp *http.Response
}

func (r *testResponse) StatusCode() int          { return r.resp.StatusCode }
func (r *testResponse) Body() io.ReadCloser      { return r.resp.Body }
func (r *testResponse) Header(key string) string { return r.resp.Header.Get(key) }

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger captures log calls for assertions
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.record("debug", msg, fields)
}
func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.record("info", msg, fields)
}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.record("warn", msg, fields)
}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.record("error", msg, fields)
}

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}
