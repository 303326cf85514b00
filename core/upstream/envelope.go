// ABOUTME: Decoding of the status envelope shared by every upstream backend
// ABOUTME: HTTP success is necessary but not sufficient; {"status":"error"} bodies are failures

package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	coreerrors "studio-app-api/core/errors"
	"studio-app-api/core/interfaces"
)

// maxBodySize bounds how much of an upstream response is read
const maxBodySize = 10 << 20

// maxMessageBytes bounds a plain-text error message taken from a response body
const maxMessageBytes = 200

// Decode reads and closes the response body, applies the shared error
// convention and returns the payload: the "data" member when present,
// otherwise the whole body. Array bodies are returned as-is.
func Decode(resp interfaces.Response, api string) (json.RawMessage, error) {
	body := resp.Body()
	defer body.Close()

	raw, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", api, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(raw, resp.StatusCode()),
			API:        api,
		}
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "empty response body",
			API:        api,
		}
	}

	if trimmed[0] != '{' {
		return json.RawMessage(trimmed), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", api, err)
	}

	if strings.EqualFold(stringMember(envelope, "status"), "error") {
		message := stringMember(envelope, "message")
		if message == "" {
			message = stringMember(envelope, "error")
		}
		if message == "" {
			message = "upstream reported an error"
		}
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    message,
			API:        api,
		}
	}

	if data, ok := envelope["data"]; ok && len(data) > 0 && string(data) != "null" {
		return data, nil
	}

	return json.RawMessage(trimmed), nil
}

// errorMessage extracts a readable message from a non-2xx body
func errorMessage(raw []byte, status int) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err == nil {
		if msg := stringMember(body, "message"); msg != "" {
			return msg
		}
		if msg := stringMember(body, "error"); msg != "" {
			return msg
		}
	}

	text := strings.TrimSpace(string(raw))
	if text == "" || strings.HasPrefix(text, "<") {
		return http.StatusText(status)
	}
	return truncateUTF8(text, maxMessageBytes)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// stringMember returns a string member of a decoded object, or "" when it is missing or not a string
func stringMember(object map[string]json.RawMessage, key string) string {
	raw, ok := object[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
