package practicum

import (
	"bytes"
	"encoding/json"
)

// isNull reports whether raw is the JSON null token. Unmarshal treats null as
// "leave the target alone" and returns no error, so null would otherwise pass
// for either key with a zero value.
func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// CheckResponse verifies the top-level shape of a poll answer and extracts
// the raw record list plus the server cursor. Records are returned untouched;
// interpreting them is ParseRecord's job.
//
// Pure function of its input, no side effects.
func CheckResponse(resp Response) ([]json.RawMessage, int64, error) {
	if resp == nil {
		return nil, 0, &ShapeError{Reason: "response is not an object"}
	}

	rawHomeworks, ok := resp["homeworks"]
	if !ok {
		return nil, 0, &ShapeError{Reason: `missing key "homeworks"`}
	}
	rawCursor, ok := resp["current_date"]
	if !ok {
		return nil, 0, &ShapeError{Reason: `missing key "current_date"`}
	}

	if isNull(rawHomeworks) {
		return nil, 0, &ShapeError{Reason: `"homeworks" is not a list`}
	}
	var records []json.RawMessage
	if err := json.Unmarshal(rawHomeworks, &records); err != nil {
		return nil, 0, &ShapeError{Reason: `"homeworks" is not a list`, Err: err}
	}

	if isNull(rawCursor) {
		return nil, 0, &ShapeError{Reason: `"current_date" is not an integer`}
	}
	var cursor int64
	if err := json.Unmarshal(rawCursor, &cursor); err != nil {
		return nil, 0, &ShapeError{Reason: `"current_date" is not an integer`, Err: err}
	}

	return records, cursor, nil
}
