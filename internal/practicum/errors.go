package practicum

import "fmt"

// RequestError covers everything between us and a decodable 200 response:
// connection failures, timeouts and non-2xx statuses.
type RequestError struct {
	Status int // 0 when the request never completed
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("status api request: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("status api request: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ShapeError reports a response that is structurally not what the API
// promises: undecodable JSON, a non-object payload, or missing/mistyped
// top-level keys.
type ShapeError struct {
	Reason string
	Err    error
}

func (e *ShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad response shape: %s: %v", e.Reason, e.Err)
	}
	return "bad response shape: " + e.Reason
}

func (e *ShapeError) Unwrap() error { return e.Err }

// RecordError reports a single homework record that cannot be interpreted:
// a required field is absent or empty, or the status code is not in the
// verdict catalog.
type RecordError struct {
	Field  string // offending field name ("homework_name" or "status")
	Status string // set when the status code is unknown
	Err    error
}

func (e *RecordError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("bad homework record: unknown status %q", e.Status)
	}
	if e.Field != "" {
		return fmt.Sprintf("bad homework record: field %q is missing or empty", e.Field)
	}
	return fmt.Sprintf("bad homework record: %v", e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
