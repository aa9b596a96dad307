package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"email-task-assistant/pkg/telegram"
)

func TestBot(t *testing.T) {
	var gotChat int64
	var gotMode string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req telegram.SendMessageRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotChat, gotMode = req.ChatID, req.ParseMode

		switch req.Text {
		case "cause_error":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "description": "chat not found"}`))
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"ok": true}`))
		}
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	ctx := context.Background()

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessageWithMode(ctx, 42, "hello", "HTML"); err != nil {
			t.Fatalf("SendMessageWithMode() error = %v", err)
		}
		if gotChat != 42 || gotMode != "HTML" {
			t.Errorf("request chat=%d mode=%q", gotChat, gotMode)
		}
	})

	t.Run("SendMessage Rejected", func(t *testing.T) {
		err := bot.SendMessage(ctx, 42, "cause_error")
		var apiErr *telegram.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error = %v, want *APIError", err)
		}
		if apiErr.Temporary() || apiErr.Description != "chat not found" {
			t.Errorf("APIError = %+v", apiErr)
		}
	})

	t.Run("SendMessage Server Error", func(t *testing.T) {
		err := bot.SendMessage(ctx, 42, "cause_500")
		var apiErr *telegram.APIError
		if !errors.As(err, &apiErr) || !apiErr.Temporary() {
			t.Fatalf("error = %v, want temporary *APIError", err)
		}
	})

	t.Run("SendMessage Cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := bot.SendMessage(cctx, 42, "hello"); !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
