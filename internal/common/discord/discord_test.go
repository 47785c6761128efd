package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendLogMessage(t *testing.T) {
	var received WebhookMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SendLogMessage("ERROR", "load failed", map[string]interface{}{
		"run_id": "r1",
		"city":   "chicago",
		"detail": strings.Repeat("x", 2000),
	})
	if err != nil {
		t.Fatalf("SendLogMessage: %v", err)
	}

	if received.Username != "bikeshare-explorer" {
		t.Errorf("Expected default username, got %q", received.Username)
	}
	if len(received.Embeds) != 1 {
		t.Fatalf("Expected 1 embed, got %d", len(received.Embeds))
	}
	embed := received.Embeds[0]
	if embed.Color != 0xFF0000 || embed.Description != "load failed" {
		t.Errorf("Unexpected embed %+v", embed)
	}
	if len(embed.Fields) != 3 || embed.Fields[0].Name != "city" || embed.Fields[2].Name != "run_id" {
		t.Errorf("Expected fields sorted by name, got %+v", embed.Fields)
	}
	if len(embed.Fields[1].Value) != maxFieldValue {
		t.Errorf("Expected long value truncated to %d, got %d", maxFieldValue, len(embed.Fields[1].Value))
	}
}

func TestSendMessageStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	if err := NewClient(server.URL).SendMessage(WebhookMessage{Content: "hi"}); err == nil {
		t.Fatal("Expected error for 429 response")
	}
}

func TestDisabledClientIsNoop(t *testing.T) {
	client := NewClient("")
	if client.Enabled() {
		t.Fatal("Expected client without URL to be disabled")
	}
	if err := client.SendLogMessage("ERROR", "ignored", nil); err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}
}
