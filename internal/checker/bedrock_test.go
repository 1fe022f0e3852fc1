package checker

import (
	"testing"
	"time"
)

func TestParsePong(t *testing.T) {
	pong := []byte("MCPE;§aCraft §lWorld;712;1.21.50;12;40;12345678901234;Second line;Survival;1;19132;19133;")

	raw, err := parsePong(pong, 42*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if raw.playersOnline != 12 || raw.playersMax != 40 {
		t.Errorf("players = %d/%d, want 12/40", raw.playersOnline, raw.playersMax)
	}
	if raw.version != "1.21.50" {
		t.Errorf("version = %q", raw.version)
	}
	if raw.motd != "§aCraft §lWorld\nSecond line" {
		t.Errorf("motd = %q", raw.motd)
	}
	if raw.latency != 42*time.Millisecond {
		t.Errorf("latency = %s", raw.latency)
	}
}

func TestParsePongMinimal(t *testing.T) {
	// Older servers answer with only the first six fields.
	pong := []byte("MCPE;A Bedrock Server;390;1.14.60;3;10")

	raw, err := parsePong(pong, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.motd != "A Bedrock Server" {
		t.Errorf("motd = %q", raw.motd)
	}
	if raw.playersOnline != 3 || raw.playersMax != 10 {
		t.Errorf("players = %d/%d", raw.playersOnline, raw.playersMax)
	}
}

func TestParsePongInconsistentCounts(t *testing.T) {
	// Servers occasionally report online > max; passed through untouched.
	pong := []byte("MCPE;motd;390;1.14.60;50;10")

	raw, err := parsePong(pong, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.playersOnline != 50 || raw.playersMax != 10 {
		t.Errorf("players = %d/%d, want pass-through 50/10", raw.playersOnline, raw.playersMax)
	}
}

func TestParsePongMalformed(t *testing.T) {
	tests := []struct {
		name string
		pong string
	}{
		{"too few fields", "MCPE;motd;390"},
		{"non-numeric online", "MCPE;motd;390;1.14.60;abc;10"},
		{"non-numeric max", "MCPE;motd;390;1.14.60;3;xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parsePong([]byte(tt.pong), time.Millisecond); err == nil {
				t.Errorf("expected error for %q", tt.pong)
			}
		})
	}
}
