// Package checker performs Minecraft server status checks.
// Dispatches to the Java server-list-ping or Bedrock unconnected-ping
// client by edition and normalizes both responses into one result shape.
package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/craftping/mc-status-go/internal/metrics"
	"github.com/craftping/mc-status-go/internal/models"
	"github.com/craftping/mc-status-go/internal/motd"
	"github.com/craftping/mc-status-go/internal/normalize"
)

// DefaultTimeout bounds one status check round trip.
const DefaultTimeout = 2500 * time.Millisecond

// rawStatus holds the edition-specific fields before normalization.
// Bedrock extras (server edition string, game mode) are dropped here.
type rawStatus struct {
	latency       time.Duration
	playersOnline int
	playersMax    int
	version       string
	motd          string
}

// Check queries target under timeout and returns a normalized result.
// Any failure - DNS, refused, timeout, handshake mismatch, malformed
// response - yields a single error kind carrying the underlying message.
// No retries, no state between invocations.
func Check(ctx context.Context, target models.ServerTarget, timeout time.Duration) models.CheckResult {
	result := models.CheckResult{
		Edition: target.Edition,
		Host:    target.Host,
		Port:    target.Port,
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var raw rawStatus
	var err error

	start := time.Now()
	switch target.Edition {
	case normalize.SchemeJava:
		raw, err = pingJava(ctx, target.Host, target.Port, timeout)
	case normalize.SchemeBedrock:
		raw, err = pingBedrock(ctx, target.Host, target.Port, timeout)
	default:
		err = fmt.Errorf("unknown edition: %q", target.Edition)
	}
	elapsed := time.Since(start)

	if err != nil {
		result.CommandStatus = models.CommandStatusError
		result.Error = err.Error()
		metrics.RecordCheck(target.Edition, elapsed.Seconds(), false, "query_failed")
		return result
	}

	result.CommandStatus = models.CommandStatusOK
	result.Online = true
	result.LatencyMs = float64(raw.latency.Microseconds()) / 1000.0
	result.PlayersOnline = raw.playersOnline
	result.PlayersMax = raw.playersMax
	result.Version = raw.version
	result.MotdRaw = raw.motd
	result.MotdClean = motd.Strip(raw.motd)

	metrics.RecordCheck(target.Edition, raw.latency.Seconds(), true, "")
	return result
}

// Run executes one check and wraps it with the total duration, the shape
// stored as a task result.
func Run(ctx context.Context, target models.ServerTarget, timeout time.Duration) models.CheckResults {
	start := time.Now()
	result := Check(ctx, target, timeout)
	return models.CheckResults{
		Result:   result,
		Duration: time.Since(start).Seconds(),
	}
}
