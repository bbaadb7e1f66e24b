package poller

import (
	"errors"

	"hwbot/internal/practicum"
	"hwbot/internal/transport/telegram"
)

// Category is the closed set of failure classes the loop distinguishes.
type Category int

const (
	CategoryNetwork Category = iota
	CategoryShapeInvalid
	CategoryRecordInvalid
	CategoryDeliveryFailed
	CategoryUnexpected
)

func (c Category) String() string {
	switch c {
	case CategoryNetwork:
		return "network"
	case CategoryShapeInvalid:
		return "shape_invalid"
	case CategoryRecordInvalid:
		return "record_invalid"
	case CategoryDeliveryFailed:
		return "delivery_failed"
	default:
		return "unexpected"
	}
}

// Notifiable reports whether a failure of this category should be reported to
// the chat (once per distinct message text). Delivery failures never are:
// re-reporting through the channel that just failed risks a failure cascade.
func (c Category) Notifiable() bool {
	return c != CategoryDeliveryFailed
}

// Classify maps an error onto the category set and reports whether it is
// fatal to the process. Only unclassified errors are fatal: an unknown
// failure may be a logic defect that would otherwise spin silently forever.
func Classify(err error) (Category, bool) {
	var (
		reqErr   *practicum.RequestError
		shapeErr *practicum.ShapeError
		recErr   *practicum.RecordError
		delErr   *telegram.DeliveryError
	)
	switch {
	case errors.As(err, &reqErr):
		return CategoryNetwork, false
	case errors.As(err, &shapeErr):
		return CategoryShapeInvalid, false
	case errors.As(err, &recErr):
		return CategoryRecordInvalid, false
	case errors.As(err, &delErr):
		return CategoryDeliveryFailed, false
	default:
		return CategoryUnexpected, true
	}
}
