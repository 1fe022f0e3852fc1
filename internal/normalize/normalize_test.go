package normalize

import "testing"

func TestTarget(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		wantErr  bool
	}{
		{"java://play.example.org:25565", "java://play.example.org:25565", false},
		{"java://play.example.org", "java://play.example.org:25565", false},
		{"bedrock://play.example.org", "bedrock://play.example.org:19132", false},
		{"BEDROCK://play.example.org:19133", "bedrock://play.example.org:19133", false},
		{"play.example.org", "java://play.example.org:25565", false},
		{"play.example.org:1337", "java://play.example.org:1337", false},
		{"udp://play.example.org", "", true},
		{"java://", "", true},
		{"java://host:0", "java://host:25565", false},
		{"java://host:70000", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Target(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Target(%q) expected error, got %q", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Target(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.expected {
				t.Errorf("Target(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestSplitTarget(t *testing.T) {
	edition, host, port, err := SplitTarget("bedrock://mc.example.net:19132")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if edition != SchemeBedrock || host != "mc.example.net" || port != 19132 {
		t.Errorf("SplitTarget = (%s, %s, %d)", edition, host, port)
	}

	if _, _, _, err := SplitTarget("java://noport"); err == nil {
		t.Error("expected error for target without port")
	}
}

func TestEdition(t *testing.T) {
	if e, err := Edition(" Java "); err != nil || e != SchemeJava {
		t.Errorf("Edition(\" Java \") = (%q, %v)", e, err)
	}
	if _, err := Edition("pocket"); err == nil {
		t.Error("expected error for unknown edition")
	}
}

func TestPort(t *testing.T) {
	if p, err := Port(0, SchemeJava); err != nil || p != DefaultJavaPort {
		t.Errorf("Port(0, java) = (%d, %v)", p, err)
	}
	if p, err := Port(0, SchemeBedrock); err != nil || p != DefaultBedrockPort {
		t.Errorf("Port(0, bedrock) = (%d, %v)", p, err)
	}
	if _, err := Port(-1, SchemeJava); err == nil {
		t.Error("expected error for negative port")
	}
	if _, err := Port(65536, SchemeJava); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestIsIP(t *testing.T) {
	if !IsIP("127.0.0.1") || !IsIP("::1") {
		t.Error("expected literal IPs to be recognized")
	}
	if IsIP("play.example.org") {
		t.Error("hostname misidentified as IP")
	}
}
