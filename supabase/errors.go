package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PostgREST / Postgres error codes this service cares about.
const (
	pgrstNoRows       = "PGRST116" // single-object mode matched zero (or many) rows
	pgUniqueViolation = "23505"
)

// ErrNoRows is returned by Execute when a Single query matches no row.
var ErrNoRows = errors.New("supabase: no rows found")

// APIError is a non-2xx response from the data store. Body keeps the raw
// upstream text so handlers can propagate it; Code carries the structured
// PostgREST error code when the body was parseable.
type APIError struct {
	Status int
	Body   string
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase: API error %d: %s", e.Status, e.Body)
}

// IsDuplicate reports whether the error is a unique-constraint violation.
// The structured SQLSTATE is checked first; the substring match remains as
// a fallback for bodies that are not PostgREST JSON.
func (e *APIError) IsDuplicate() bool {
	if e.Code == pgUniqueViolation {
		return true
	}
	return strings.Contains(strings.ToLower(e.Body), "duplicate key")
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Body: string(body)}

	var parsed struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Code = parsed.Code
	}
	return apiErr
}

// ConnError is a transport-level failure (connection refused, timeout)
// before any HTTP status was received.
type ConnError struct {
	Op  string
	Err error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("supabase: connection error during %s: %v", e.Op, e.Err)
}

func (e *ConnError) Unwrap() error { return e.Err }

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
