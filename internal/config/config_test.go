package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if _, ok := cfg.GetDefaultServer(); ok {
		t.Error("empty config should have no default server")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
default_server:
  host: play.example.org
  edition: bedrock
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def, ok := cfg.GetDefaultServer()
	if !ok {
		t.Fatal("expected default server")
	}
	if def.Edition != "bedrock" || def.Port != 19132 {
		t.Errorf("default server = %+v, want bedrock edition with port 19132", def)
	}

	if cfg.GetCheckTimeoutMs() != 2500 {
		t.Errorf("check timeout = %d, want fallback 2500", cfg.GetCheckTimeoutMs())
	}
	if cfg.GetRefreshInterval() != 30 {
		t.Errorf("refresh interval = %d, want fallback 30", cfg.GetRefreshInterval())
	}
	if cfg.GetServerPort() != "5000" {
		t.Errorf("server port = %s, want fallback 5000", cfg.GetServerPort())
	}
}

func TestLoadConfigEditionFallback(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
default_server:
  host: play.example.org
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def, _ := cfg.GetDefaultServer()
	if def.Edition != "java" || def.Port != 25565 {
		t.Errorf("default server = %+v, want java edition with port 25565", def)
	}
}

func TestLoadConfigInvalidEdition(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
default_server:
  host: play.example.org
  edition: pocket
`))
	if err == nil {
		t.Error("expected error for unknown edition")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "::not yaml::"))
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestApplyOverrides(t *testing.T) {
	v := 0
	ApplyIntOverride(true, 7, &v, 3)
	if v != 7 {
		t.Errorf("changed flag should override, got %d", v)
	}

	v = 0
	ApplyIntOverride(false, 7, &v, 3)
	if v != 3 {
		t.Errorf("unchanged flag should fall back to default, got %d", v)
	}

	s := ""
	ApplyStringOverride("", &s, "fallback")
	if s != "fallback" {
		t.Errorf("empty CLI value should fall back, got %q", s)
	}
	ApplyStringOverride("cli", &s, "fallback")
	if s != "cli" {
		t.Errorf("CLI value should override, got %q", s)
	}
}
