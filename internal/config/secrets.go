package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names are a contract with existing deployments;
// they match the original service verbatim.
const (
	EnvPracticumToken = "PRACTICUM_TOKEN"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
)

// Secrets hold the three required credentials. They are read once at startup
// and passed by value into the components that need them; nothing in the core
// reads ambient environment state after this.
type Secrets struct {
	PracticumToken string
	TelegramToken  string
	ChatID         int64
}

// LoadSecrets reads credentials from the environment, first merging a .env
// file if one is present in the working directory. A missing or malformed
// value is a startup-fatal configuration error.
func LoadSecrets() (Secrets, error) {
	// Best-effort: absence of .env is fine, the variables may be set directly.
	_ = godotenv.Load()

	var missing []string
	token := strings.TrimSpace(os.Getenv(EnvPracticumToken))
	if token == "" {
		missing = append(missing, EnvPracticumToken)
	}
	botToken := strings.TrimSpace(os.Getenv(EnvTelegramToken))
	if botToken == "" {
		missing = append(missing, EnvTelegramToken)
	}
	rawChat := strings.TrimSpace(os.Getenv(EnvTelegramChatID))
	if rawChat == "" {
		missing = append(missing, EnvTelegramChatID)
	}
	if len(missing) > 0 {
		return Secrets{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	chatID, err := strconv.ParseInt(rawChat, 10, 64)
	if err != nil {
		return Secrets{}, fmt.Errorf("%s: not a valid chat id: %w", EnvTelegramChatID, err)
	}
	if chatID == 0 {
		return Secrets{}, errors.New(EnvTelegramChatID + ": chat id must be non-zero")
	}

	return Secrets{
		PracticumToken: token,
		TelegramToken:  botToken,
		ChatID:         chatID,
	}, nil
}
