package homework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFormatStatus_KnownStatuses(t *testing.T) {
	for _, status := range []Status{StatusApproved, StatusReviewing, StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			msg, err := FormatStatus(Entry{Name: strPtr("hw1"), Status: strPtr(string(status))})
			require.NoError(t, err)

			verdict, ok := Verdict(status)
			require.True(t, ok)
			assert.Equal(t, "Изменился статус проверки работы \"hw1\". "+verdict, msg)
		})
	}
}

func TestFormatStatus_FieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		field string
		kind  FieldKind
	}{
		{name: "missing name", entry: Entry{Status: strPtr("approved")}, field: "homework_name", kind: FieldMissing},
		{name: "missing status", entry: Entry{Name: strPtr("hw2")}, field: "status", kind: FieldMissing},
		{name: "unknown status", entry: Entry{Name: strPtr("hw2"), Status: strPtr("unknown_status")}, field: "status", kind: FieldUnknown},
		{name: "empty status", entry: Entry{Name: strPtr("hw2"), Status: strPtr("")}, field: "status", kind: FieldUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := FormatStatus(tt.entry)
			assert.Empty(t, msg)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.Equal(t, tt.kind, fieldErr.Kind)
		})
	}
}

func TestFormatStatus_UnknownStatusMessage(t *testing.T) {
	_, err := FormatStatus(Entry{Name: strPtr("hw2"), Status: strPtr("unknown_status")})
	assert.EqualError(t, err, `недокументированный статус "unknown_status"`)
}

func TestCredentials_Validate(t *testing.T) {
	assert.NoError(t, Credentials{PracticumToken: "p", TelegramToken: "t", TelegramChatID: 1}.Validate())

	err := Credentials{TelegramToken: "t"}.Validate()
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"PRACTICUM_TOKEN", "TELEGRAM_CHAT_ID"}, cfgErr.Missing)
}
