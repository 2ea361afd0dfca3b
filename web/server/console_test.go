package server

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

func receive(t *testing.T, ch <-chan ConsoleMessage) ConsoleMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(200 * time.Millisecond):
		t.Fatal("Timeout waiting for console message")
	}
	return ConsoleMessage{}
}

func TestWebLogger_Printf(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{"plain", "Building scene\n", nil, "Building scene\n"},
		{"progress", "Rendered %d/%d rows (%.0f%%)\n", []interface{}{30, 60, 50.0}, "Rendered 30/60 rows (50%)\n"},
		{"no newline", "%s done", []interface{}{"glass"}, "glass done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := make(chan ConsoleMessage, 1)
			NewWebLogger("render-42", ch).Printf(tt.format, tt.args...)

			msg := receive(t, ch)
			if msg.Message != tt.expected {
				t.Errorf("Expected message %q, got %q", tt.expected, msg.Message)
			}
			if msg.RenderID != "render-42" || msg.Level != "info" {
				t.Errorf("Expected render-42/info, got %s/%s", msg.RenderID, msg.Level)
			}
			if time.Since(msg.Timestamp) > time.Second {
				t.Errorf("Timestamp too old: %v", msg.Timestamp)
			}
		})
	}
}

func TestWebLogger_PreservesOrder(t *testing.T) {
	ch := make(chan ConsoleMessage, 4)
	logger := NewWebLogger("ordered", ch)
	for i := 0; i < 4; i++ {
		logger.Printf("row %d", i)
	}
	for i := 0; i < 4; i++ {
		if msg := receive(t, ch); msg.Message != fmt.Sprintf("row %d", i) {
			t.Errorf("Message %d out of order: %q", i, msg.Message)
		}
	}
}

func TestWebLogger_NeverBlocks(t *testing.T) {
	done := make(chan struct{})
	go func() {
		full := NewWebLogger("full", make(chan ConsoleMessage))
		full.Printf("dropped")
		NewWebLogger("nil", nil).Printf("dropped")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Printf blocked on a full or nil channel")
	}
}

func TestConsoleMessage_JSONSerialization(t *testing.T) {
	msg := ConsoleMessage{
		RenderID:  "abc",
		Message:   "Test message",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:     "info",
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	expected := `{"renderId":"abc","message":"Test message","timestamp":"2024-01-02T03:04:05Z","level":"info"}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestConsole_KeepsMostRecentMessages(t *testing.T) {
	console := &Console{limit: 3}
	for i := 0; i < 5; i++ {
		console.record(ConsoleMessage{RenderID: fmt.Sprintf("r%d", i%2), Message: fmt.Sprintf("m%d", i)})
	}

	all := console.Messages("")
	if len(all) != 3 || all[0].Message != "m2" || all[2].Message != "m4" {
		t.Errorf("Expected messages m2..m4, got %+v", all)
	}

	filtered := console.Messages("r0")
	if len(filtered) != 2 || filtered[0].Message != "m2" || filtered[1].Message != "m4" {
		t.Errorf("Expected m2 and m4 for r0, got %+v", filtered)
	}
}

func TestConsole_CollectsFromChannel(t *testing.T) {
	console := NewConsole(10)
	logger := NewWebLogger("render-1", console.Channel())
	logger.Printf("hello\n")

	deadline := time.Now().Add(time.Second)
	for len(console.Messages("render-1")) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for the console to collect")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
