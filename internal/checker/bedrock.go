package checker

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/sandertv/go-raknet"
)

// Unconnected-pong field indices. The pong is a semicolon-separated
// string: edition;motd;protocol;version;online;max;guid;motd2;gamemode;...
const (
	pongFieldMotd    = 1
	pongFieldVersion = 3
	pongFieldOnline  = 4
	pongFieldMax     = 5
	pongFieldMotd2   = 7
	pongMinFields    = 6
)

// pingBedrock performs a RakNet unconnected ping and parses the pong.
// go-raknet measures no round trip itself, so latency is wall time around
// the call.
func pingBedrock(ctx context.Context, host string, port int, timeout time.Duration) (rawStatus, error) {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	start := time.Now()
	pong, err := raknet.PingContext(pingCtx, addr)
	latency := time.Since(start)
	if err != nil {
		return rawStatus{}, fmt.Errorf("unconnected ping failed: %w", err)
	}

	return parsePong(pong, latency)
}

// parsePong splits the pong payload and extracts the normalized fields.
// Short or non-numeric pongs are a malformed-response failure; extra
// fields (server edition, game mode, ports) are ignored.
func parsePong(pong []byte, latency time.Duration) (rawStatus, error) {
	fields := strings.Split(string(pong), ";")
	if len(fields) < pongMinFields {
		return rawStatus{}, fmt.Errorf("malformed pong: %d fields", len(fields))
	}

	online, err := strconv.Atoi(fields[pongFieldOnline])
	if err != nil {
		return rawStatus{}, fmt.Errorf("malformed pong: player count %q", fields[pongFieldOnline])
	}
	maxPlayers, err := strconv.Atoi(fields[pongFieldMax])
	if err != nil {
		return rawStatus{}, fmt.Errorf("malformed pong: max player count %q", fields[pongFieldMax])
	}

	rawMotd := fields[pongFieldMotd]
	if len(fields) > pongFieldMotd2 && fields[pongFieldMotd2] != "" {
		rawMotd += "\n" + fields[pongFieldMotd2]
	}

	return rawStatus{
		latency:       latency,
		playersOnline: online,
		playersMax:    maxPlayers,
		version:       fields[pongFieldVersion],
		motd:          rawMotd,
	}, nil
}
