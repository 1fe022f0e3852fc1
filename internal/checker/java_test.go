package checker

import (
	"encoding/json"
	"testing"
)

func TestDescriptionText(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"plain string", `"A Minecraft Server"`, "A Minecraft Server"},
		{"string with codes", `"§aHello"`, "§aHello"},
		{"component", `{"text":"Hello"}`, "Hello"},
		{"component with extras", `{"text":"Welcome ","extra":[{"text":"to "},{"text":"the server"}]}`, "Welcome to the server"},
		{"nested extras", `{"text":"a","extra":[{"text":"b","extra":[{"text":"c"}]}]}`, "abc"},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := descriptionText(json.RawMessage(tt.raw)); got != tt.expected {
				t.Errorf("descriptionText(%s) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestJavaStatusUnmarshal(t *testing.T) {
	payload := `{
		"version": {"name": "1.21.4", "protocol": 769},
		"players": {"max": 200, "online": 117, "sample": [{"name": "steve", "id": "uuid"}]},
		"description": {"text": "§aWelcome §lto§r the server"},
		"favicon": "data:image/png;base64,"
	}`

	var status javaStatus
	if err := json.Unmarshal([]byte(payload), &status); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if status.Version.Name != "1.21.4" {
		t.Errorf("version = %q", status.Version.Name)
	}
	if status.Players.Online != 117 || status.Players.Max != 200 {
		t.Errorf("players = %d/%d", status.Players.Online, status.Players.Max)
	}
	if got := descriptionText(status.Description); got != "§aWelcome §lto§r the server" {
		t.Errorf("description = %q", got)
	}
}

func TestResolveJavaAddrLiteralIP(t *testing.T) {
	// Literal IPs and non-default ports never trigger an SRV lookup.
	if addr := resolveJavaAddr("192.0.2.1", 25565, 0); addr != "192.0.2.1:25565" {
		t.Errorf("addr = %q", addr)
	}
	if addr := resolveJavaAddr("play.example.org", 25566, 0); addr != "play.example.org:25566" {
		t.Errorf("addr = %q", addr)
	}
}
