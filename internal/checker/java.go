package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/Tnze/go-mc/bot"
	"github.com/craftping/mc-status-go/internal/normalize"
)

// javaStatus mirrors the server-list-ping JSON response. Description is
// kept raw because servers send either a plain string or a chat component
// tree.
type javaStatus struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int    `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int `json:"max"`
		Online int `json:"online"`
		Sample []struct {
			Name string `json:"name"`
			ID   string `json:"id"`
		} `json:"sample"`
	} `json:"players"`
	Description json.RawMessage `json:"description"`
	Favicon     string          `json:"favicon"`
}

// chatComponent is the subset of the chat format needed to flatten a
// description into text. Legacy § codes inside Text survive into the raw
// MOTD and are handled by the sanitizer.
type chatComponent struct {
	Text  string          `json:"text"`
	Extra []chatComponent `json:"extra"`
}

func (c chatComponent) flatten(b *strings.Builder) {
	b.WriteString(c.Text)
	for _, e := range c.Extra {
		e.flatten(b)
	}
}

// pingJava performs a server-list-ping round trip via go-mc.
// The library call takes no context, so it runs in a goroutine with a
// select on ctx, the same shape the rest of the checker uses.
func pingJava(ctx context.Context, host string, port int, timeout time.Duration) (rawStatus, error) {
	addr := resolveJavaAddr(host, port, timeout)

	type pingResult struct {
		data  []byte
		delay time.Duration
		err   error
	}
	resultCh := make(chan pingResult, 1)

	go func() {
		data, delay, err := bot.PingAndListTimeout(addr, timeout)
		resultCh <- pingResult{data: data, delay: delay, err: err}
	}()

	var res pingResult
	select {
	case <-ctx.Done():
		return rawStatus{}, fmt.Errorf("check cancelled: %w", ctx.Err())
	case res = <-resultCh:
	}

	if res.err != nil {
		return rawStatus{}, fmt.Errorf("server list ping failed: %w", res.err)
	}

	var status javaStatus
	if err := json.Unmarshal(res.data, &status); err != nil {
		return rawStatus{}, fmt.Errorf("malformed status response: %w", err)
	}

	return rawStatus{
		latency:       res.delay,
		playersOnline: status.Players.Online,
		playersMax:    status.Players.Max,
		version:       status.Version.Name,
		motd:          descriptionText(status.Description),
	}, nil
}

// resolveJavaAddr applies SRV resolution for named hosts on the default
// port, mirroring the SRV-aware lookup Java clients perform. Explicit
// non-default ports and literal IPs bypass the lookup.
func resolveJavaAddr(host string, port int, timeout time.Duration) string {
	if port == normalize.DefaultJavaPort && !normalize.IsIP(host) {
		if srvHost, srvPort, ok := lookupSRV(host, timeout); ok {
			return net.JoinHostPort(srvHost, strconv.Itoa(int(srvPort)))
		}
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// descriptionText flattens a description into its raw text: plain string,
// chat component tree, or - for anything unparseable - the raw JSON so the
// caller still sees something.
func descriptionText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var c chatComponent
	if err := json.Unmarshal(raw, &c); err == nil {
		var b strings.Builder
		c.flatten(&b)
		return b.String()
	}

	return string(raw)
}
