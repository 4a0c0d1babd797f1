package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelebotAdapter_SendMessage(t *testing.T) {
	var gotChat, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/bottoken/sendMessage"), r.URL.Path)

		var params map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		gotChat, _ = params["chat_id"].(string)
		gotText, _ = params["text"].(string)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"},"text":"hi"}}`))
	}))
	defer srv.Close()

	bot, err := NewBot("token", srv.URL, time.Second)
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage(42, "hi")
	require.NoError(t, err)
	assert.Equal(t, "42", gotChat)
	assert.Equal(t, "hi", gotText)
}

func TestTelebotAdapter_SendMessageRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	}))
	defer srv.Close()

	bot, err := NewBot("token", srv.URL, time.Second)
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage(42, "hi")
	assert.Error(t, err)
}
