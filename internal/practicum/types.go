package practicum

import (
	"encoding/json"
	"fmt"
)

// Response is one raw poll answer, kept untyped until CheckResponse has seen
// it. Discarded after validation.
type Response map[string]json.RawMessage

// Homework is one validated status record. Immutable once constructed;
// ParseRecord is the only constructor.
type Homework struct {
	Name    string
	Status  string
	Comment string // reviewer comment, may be empty
}

// Notification renders the user-facing status-change message.
// Wording is contractual, see package doc.
func (h Homework) Notification() string {
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", h.Name, Verdicts[h.Status])
}
