// internal/domain/homework/credentials.go
package homework

// Credentials required before polling may start.
type Credentials struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
}

// Validate reports every missing field at once.
func (c Credentials) Validate() error {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.TelegramChatID == 0 {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}
