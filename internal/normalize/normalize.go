// Package normalize validates and canonicalizes server targets.
// Single source of truth for edition schemes and default ports.
package normalize

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

const (
	// SchemeJava is the target scheme for Java edition servers
	SchemeJava = "java"
	// SchemeBedrock is the target scheme for Bedrock edition servers
	SchemeBedrock = "bedrock"

	// DefaultJavaPort is the default Java edition server port (TCP)
	DefaultJavaPort = 25565
	// DefaultBedrockPort is the default Bedrock edition server port (UDP)
	DefaultBedrockPort = 19132
)

// EditionConfig describes one edition scheme.
type EditionConfig struct {
	Scheme      string
	DisplayName string
	DefaultPort int
	Transport   string
}

// EditionConfigs maps scheme to edition metadata.
var EditionConfigs = map[string]EditionConfig{
	SchemeJava:    {Scheme: SchemeJava, DisplayName: "Java", DefaultPort: DefaultJavaPort, Transport: "tcp"},
	SchemeBedrock: {Scheme: SchemeBedrock, DisplayName: "Bedrock", DefaultPort: DefaultBedrockPort, Transport: "udp"},
}

// Edition canonicalizes an edition name to its scheme.
func Edition(s string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(s))
	if _, ok := EditionConfigs[e]; !ok {
		return "", fmt.Errorf("unknown edition: %q (expected %q or %q)", s, SchemeJava, SchemeBedrock)
	}
	return e, nil
}

// DefaultPort returns the default port for an edition scheme, 0 if unknown.
func DefaultPort(edition string) int {
	if cfg, ok := EditionConfigs[edition]; ok {
		return cfg.DefaultPort
	}
	return 0
}

// Host validates a hostname or IP. Only non-empty is required - malformed
// hosts are allowed through and surface as failures from the query itself.
func Host(host string) (string, error) {
	h := strings.TrimSpace(host)
	if h == "" {
		return "", fmt.Errorf("host cannot be empty")
	}
	return h, nil
}

// Port validates a port number, applying the edition default when zero.
func Port(port int, edition string) (int, error) {
	if port == 0 {
		if d := DefaultPort(edition); d > 0 {
			return d, nil
		}
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port: %d (must be between 1 and 65535)", port)
	}
	return port, nil
}

// Target parses and canonicalizes an edition://host:port target string.
// Bare host[:port] defaults to the Java edition, matching the original UI.
func Target(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("target cannot be empty")
	}

	if !strings.Contains(s, "://") {
		s = SchemeJava + "://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid target %q: %w", raw, err)
	}

	edition, err := Edition(u.Scheme)
	if err != nil {
		return "", err
	}

	host, err := Host(u.Hostname())
	if err != nil {
		return "", fmt.Errorf("invalid target %q: %w", raw, err)
	}

	port := 0
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("invalid target %q: %w", raw, err)
		}
	}
	port, err = Port(port, edition)
	if err != nil {
		return "", fmt.Errorf("invalid target %q: %w", raw, err)
	}

	return fmt.Sprintf("%s://%s", edition, net.JoinHostPort(host, strconv.Itoa(port))), nil
}

// SplitTarget decomposes a normalized target into edition, host, port.
func SplitTarget(target string) (edition, host string, port int, err error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid target %q: %w", target, err)
	}
	edition, err = Edition(u.Scheme)
	if err != nil {
		return "", "", 0, err
	}
	host = u.Hostname()
	if host == "" {
		return "", "", 0, fmt.Errorf("invalid target %q: missing host", target)
	}
	port, err = strconv.Atoi(u.Port())
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid target %q: missing port", target)
	}
	return edition, host, port, nil
}

// IsIP reports whether host parses as a literal IP address.
func IsIP(host string) bool {
	return net.ParseIP(host) != nil
}

// DisplayName returns the human-readable edition name for a scheme.
func DisplayName(edition string) string {
	if cfg, ok := EditionConfigs[edition]; ok {
		return cfg.DisplayName
	}
	return "Unknown"
}
