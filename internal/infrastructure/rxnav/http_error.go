package rxnav

import (
	"fmt"
	"net/http"
	"strings"
)

// HTTPError is a sanitized summary of a non-2xx registry response.
type HTTPError struct {
	Op         string
	StatusCode int
	Status     string

	// Snippet is a truncated hint of the response body.
	Snippet string
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "rxnav http error"
	}
	msg := fmt.Sprintf("rxnav api error: op=%s status=%s", strings.TrimSpace(e.Op), strings.TrimSpace(e.Status))
	if e.Snippet != "" {
		msg += " body=" + e.Snippet
	}
	return msg
}

func newHTTPError(op string, resp *http.Response, body []byte) error {
	h := &HTTPError{Op: op}
	if resp != nil {
		h.StatusCode = resp.StatusCode
		h.Status = resp.Status
	}
	h.Snippet = truncate(body)
	return h
}

func truncate(body []byte) string {
	const max = 256
	b := body
	if len(b) > max {
		b = b[:max]
	}
	s := strings.ReplaceAll(string(b), "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(body) > max {
		return s + "..."
	}
	return s
}
