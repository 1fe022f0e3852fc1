package motd

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"empty", "", ""},
		{"no codes", "A Minecraft Server", "A Minecraft Server"},
		{"color and style codes", "§aWelcome §lto§r the server", "Welcome to the server"},
		{"trailing lone marker", "§", ""},
		{"lone marker after text", "hello§", "hello"},
		{"marker before non-code", "50§% off", "50% off"},
		{"hex color sequence", "§x§f§f§0§0§0§0Red", "Red"},
		{"multi-line", "§eline one\n§cline two", "line one\nline two"},
		{"whitespace untouched", "§7a  b\tc", "a  b\tc"},
		{"uppercase codes", "§AWelcome §LBold", "Welcome Bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.raw); got != tt.expected {
				t.Errorf("Strip(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestStripRemovesExactlyPairs(t *testing.T) {
	// N marker+code pairs: output shrinks by exactly 2N runes.
	raw := "§ahello §bworld §cfoo"
	const pairs = 3

	got := Strip(raw)
	if len([]rune(raw))-len([]rune(got)) != 2*pairs {
		t.Errorf("expected rune length to shrink by %d, got %d -> %d runes",
			2*pairs, len([]rune(raw)), len([]rune(got)))
	}
	if got != "hello world foo" {
		t.Errorf("Strip(%q) = %q", raw, got)
	}
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"§",
		"plain text",
		"§aWelcome §lto§r the server",
		"§x§f§f§0§0§0§0hex",
		"§§a1",
		"50§% off",
	}

	for _, s := range inputs {
		once := Strip(s)
		twice := Strip(once)
		if once != twice {
			t.Errorf("Strip not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"§aWelcome   §lto§r the server", "Welcome to the server"},
		{"&aAmpersand &lcodes", "Ampersand codes"},
		{"  padded  ", "padded"},
		{"line\none", "line one"},
	}

	for _, tt := range tests {
		if got := Clean(tt.raw); got != tt.expected {
			t.Errorf("Clean(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}
