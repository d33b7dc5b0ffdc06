package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrInvalidAsset is returned when an operation does not apply to an asset kind.
var ErrInvalidAsset = errors.New("invalid asset")

// RequestError is returned when the API answers with an unexpected status.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("[substra-api] %s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}

// Key returns the asset key carried by a conflict response, if any.
func (e *RequestError) Key() string {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(e.Body), &payload); err != nil {
		return ""
	}
	for _, field := range []string{"pkhash", "key"} {
		if key, ok := payload[field].(string); ok && key != "" {
			return key
		}
	}
	return ""
}

func hasStatus(err error, code int) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == code
}

// IsNotFound reports whether err is a 404 answer.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict reports whether err is a 409 answer.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}
