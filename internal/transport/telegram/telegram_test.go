package telegram

import (
	"errors"
	"testing"

	logx "hwbot/pkg/logx"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{ChatID: 1, Offline: true}, logx.Nop()); err == nil {
		t.Fatal("expected error for empty token")
	}
	if _, err := New(Config{Token: "t", Offline: true}, logx.Nop()); err == nil {
		t.Fatal("expected error for empty chat id")
	}
	a, err := New(Config{Token: "t", ChatID: 1, Offline: true}, logx.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.limiter.Limit() != 1 || a.limiter.Burst() != 3 {
		t.Fatalf("unexpected default rate limit: %v/%d", a.limiter.Limit(), a.limiter.Burst())
	}
}

func TestDeliveryErrorUnwraps(t *testing.T) {
	cause := errors.New("451")
	err := &DeliveryError{Err: cause}
	if !errors.Is(err, cause) {
		t.Fatal("DeliveryError must unwrap to its cause")
	}
}
