package practicum

import (
	"encoding/json"
	"errors"
	"testing"
)

func mustResponse(t *testing.T, raw string) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}
	return resp
}

func TestCheckResponseValid(t *testing.T) {
	resp := mustResponse(t, `{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1000}`)

	records, cursor, err := CheckResponse(resp)
	if err != nil {
		t.Fatalf("CheckResponse: %v", err)
	}
	if cursor != 1000 {
		t.Fatalf("expected cursor 1000, got %d", cursor)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	// Records come back uninterpreted.
	var probe map[string]any
	if err := json.Unmarshal(records[0], &probe); err != nil {
		t.Fatalf("record not passed through intact: %v", err)
	}
	if probe["homework_name"] != "hw1" {
		t.Fatalf("unexpected record contents: %v", probe)
	}
}

func TestCheckResponseEmptyHomeworks(t *testing.T) {
	resp := mustResponse(t, `{"homeworks":[],"current_date":1000}`)

	records, cursor, err := CheckResponse(resp)
	if err != nil {
		t.Fatalf("CheckResponse: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
	if cursor != 1000 {
		t.Fatalf("expected cursor 1000, got %d", cursor)
	}
}

func TestCheckResponseShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing homeworks", `{"current_date":1000}`},
		{"missing current_date", `{"homeworks":[]}`},
		{"homeworks not a list", `{"homeworks":{"a":1},"current_date":1000}`},
		{"null homeworks", `{"homeworks":null,"current_date":1000}`},
		{"current_date not an integer", `{"homeworks":[],"current_date":"soon"}`},
		{"null current_date", `{"homeworks":[],"current_date":null}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := CheckResponse(mustResponse(t, tc.raw))
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("expected ShapeError, got %v", err)
			}
		})
	}
}

func TestCheckResponseNil(t *testing.T) {
	_, _, err := CheckResponse(nil)
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeError for nil response, got %v", err)
	}
}
