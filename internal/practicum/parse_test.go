package practicum

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseRecordRendersVerdicts(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{"approved", `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`},
		{"reviewing", `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`},
		{"rejected", `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			raw := json.RawMessage(`{"homework_name":"hw1","status":"` + tc.status + `"}`)
			hw, err := ParseRecord(raw)
			if err != nil {
				t.Fatalf("ParseRecord: %v", err)
			}
			if got := hw.Notification(); got != tc.want {
				t.Fatalf("notification mismatch:\n got: %s\nwant: %s", got, tc.want)
			}
		})
	}
}

func TestParseRecordComment(t *testing.T) {
	raw := json.RawMessage(`{"homework_name":"hw1","status":"rejected","reviewer_comment":"see notes"}`)
	hw, err := ParseRecord(raw)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if hw.Comment != "see notes" {
		t.Fatalf("expected comment to survive parsing, got %q", hw.Comment)
	}
}

func TestParseRecordMissingFields(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		field string
	}{
		{"no name", `{"status":"approved"}`, "homework_name"},
		{"empty name", `{"homework_name":"  ","status":"approved"}`, "homework_name"},
		{"no status", `{"homework_name":"hw1"}`, "status"},
		{"empty status", `{"homework_name":"hw1","status":""}`, "status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRecord(json.RawMessage(tc.raw))
			var recErr *RecordError
			if !errors.As(err, &recErr) {
				t.Fatalf("expected RecordError, got %v", err)
			}
			if recErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, recErr.Field)
			}
		})
	}
}

func TestParseRecordUnknownStatus(t *testing.T) {
	_, err := ParseRecord(json.RawMessage(`{"homework_name":"hw1","status":"pending"}`))
	var recErr *RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected RecordError, got %v", err)
	}
	if recErr.Status != "pending" {
		t.Fatalf("expected unknown status to be reported, got %+v", recErr)
	}
}

func TestParseRecordNotAnObject(t *testing.T) {
	_, err := ParseRecord(json.RawMessage(`[1,2,3]`))
	var recErr *RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected RecordError, got %v", err)
	}
}
