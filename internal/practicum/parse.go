package practicum

import (
	"encoding/json"
	"strings"
)

// rawRecord is the wire form of one homework entry.
type rawRecord struct {
	HomeworkName    string `json:"homework_name"`
	Status          string `json:"status"`
	ReviewerComment string `json:"reviewer_comment"`
}

// ParseRecord interprets one raw homework entry. It fails with a RecordError
// when a required field is absent/empty or the status code is outside the
// verdict catalog; a Homework is never constructed from an invalid record.
//
// Pure, no I/O.
func ParseRecord(raw json.RawMessage) (Homework, error) {
	var r rawRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return Homework{}, &RecordError{Err: err}
	}

	name := strings.TrimSpace(r.HomeworkName)
	if name == "" {
		return Homework{}, &RecordError{Field: "homework_name"}
	}
	status := strings.TrimSpace(r.Status)
	if status == "" {
		return Homework{}, &RecordError{Field: "status"}
	}
	if !KnownStatus(status) {
		return Homework{}, &RecordError{Status: status}
	}

	return Homework{
		Name:    name,
		Status:  status,
		Comment: r.ReviewerComment,
	}, nil
}
