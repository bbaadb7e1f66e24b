// Package telegram delivers notification texts to a single chat via the
// Telegram Bot API. It makes exactly one delivery attempt per call; whether
// and when to retry is the caller's decision.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"

	logx "hwbot/pkg/logx"
)

// DeliveryError wraps any failure to hand a message to the Bot API.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return fmt.Sprintf("telegram delivery: %v", e.Err) }
func (e *DeliveryError) Unwrap() error { return e.Err }

type Config struct {
	Token  string
	ChatID int64

	// Token bucket in front of sendMessage. Defaults: 1/sec, burst 3.
	RatePerSec int
	Burst      int

	// Offline skips the getMe handshake; used by tests.
	Offline bool
}

type Adapter struct {
	bot     *tele.Bot
	chat    *tele.Chat
	limiter *rate.Limiter
	log     logx.Logger
}

func New(cfg Config, log logx.Logger) (*Adapter, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	if cfg.ChatID == 0 {
		return nil, errors.New("telegram chat id is empty")
	}
	b, err := tele.NewBot(tele.Settings{
		Token:   cfg.Token,
		Offline: cfg.Offline,
	})
	if err != nil {
		return nil, err
	}
	rps := cfg.RatePerSec
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 3
	}
	return &Adapter{
		bot:     b,
		chat:    &tele.Chat{ID: cfg.ChatID},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		log:     log,
	}, nil
}

// Send delivers one plain-text message. A failed delivery comes back as a
// DeliveryError; a cancelled context comes back as the context's error.
func (a *Adapter) Send(ctx context.Context, text string) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := a.bot.Send(a.chat, text); err != nil {
		return &DeliveryError{Err: err}
	}
	a.log.Debug("message sent", logx.Int64("chat_id", a.chat.ID), logx.Int("chars", len(text)))
	return nil
}
