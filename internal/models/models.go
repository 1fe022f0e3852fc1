// Package models defines API request/response structures.
package models

import (
	"fmt"
	"time"

	"github.com/craftping/mc-status-go/internal/normalize"
)

const (
	// CommandStatusOK indicates a successful status check
	CommandStatusOK = "ok"
	// CommandStatusError indicates a failed status check
	CommandStatusError = "error"
)

// ServerTarget identifies one Minecraft server to check
// @Description Server target with edition, host and optional port
type ServerTarget struct {
	Edition string `json:"edition" binding:"required" example:"java"`        // Edition: java or bedrock
	Host    string `json:"host" binding:"required" example:"mc.hypixel.net"` // Hostname or IP
	Port    int    `json:"port,omitempty" example:"25565"`                   // Port (default 25565 java, 19132 bedrock)
}

// Validate canonicalizes edition, applies default port, checks ranges.
// Delegates the rules to the normalize package.
func (t *ServerTarget) Validate() error {
	edition, err := normalize.Edition(t.Edition)
	if err != nil {
		return err
	}
	t.Edition = edition

	host, err := normalize.Host(t.Host)
	if err != nil {
		return err
	}
	t.Host = host

	port, err := normalize.Port(t.Port, t.Edition)
	if err != nil {
		return err
	}
	t.Port = port

	return nil
}

// String renders the target as edition://host:port.
func (t ServerTarget) String() string {
	return fmt.Sprintf("%s://%s:%d", t.Edition, t.Host, t.Port)
}

// StatusCheckRequest represents a status check API request
// @Description Status check request for a single Minecraft server
type StatusCheckRequest struct {
	Edition string `json:"edition" binding:"required" example:"java"`        // Edition: java or bedrock
	Host    string `json:"host" binding:"required" example:"mc.hypixel.net"` // Hostname or IP
	Port    int    `json:"port,omitempty" example:"25565"`                   // Port (optional, edition default applied)
}

// Target converts the request into a validated ServerTarget.
func (r *StatusCheckRequest) Target() (ServerTarget, error) {
	t := ServerTarget{Edition: r.Edition, Host: r.Host, Port: r.Port}
	if err := t.Validate(); err != nil {
		return ServerTarget{}, err
	}
	return t, nil
}

// TaskResponse is returned when a status check task is enqueued
// @Description Task submission response with unique task ID
type TaskResponse struct {
	TaskID  string `json:"task_id" example:"abc123def456789"`       // Unique task identifier for polling
	Message string `json:"message" example:"status check enqueued"` // Status message
}

// CheckResult is the normalized outcome of one server status check.
// Exactly one of the success fields or Error is meaningful: CommandStatus
// tells which. Player counts are server-reported and passed through as-is,
// including online > max.
// @Description Normalized status check result
type CheckResult struct {
	CommandStatus string  `json:"command_status" example:"ok"`                  // ok or error
	Edition       string  `json:"edition" example:"java"`                       // Edition queried
	Host          string  `json:"host" example:"mc.hypixel.net"`                // Host queried
	Port          int     `json:"port" example:"25565"`                         // Port queried
	Online        bool    `json:"online" example:"true"`                        // True when the server answered
	LatencyMs     float64 `json:"latency_ms,omitempty" example:"23.45"`         // Round-trip latency in milliseconds
	PlayersOnline int     `json:"players_online" example:"117"`                 // Current player count
	PlayersMax    int     `json:"players_max" example:"200"`                    // Player slot count
	Version       string  `json:"version,omitempty" example:"1.21.4"`           // Server-reported version, opaque
	MotdRaw       string  `json:"motd_raw,omitempty"`                           // MOTD with formatting codes
	MotdClean     string  `json:"motd_clean,omitempty" example:"Welcome!"`      // MOTD with formatting codes stripped
	Error         string  `json:"error,omitempty" example:"connection timeout"` // Error message if the check failed
}

// CheckResults wraps a result with the total check duration.
// @Description Status check result with total duration
type CheckResults struct {
	Result   CheckResult `json:"result"`                   // Normalized check result
	Duration float64     `json:"duration" example:"0.125"` // Total check duration in seconds
}

// TaskStatusResponse represents task status and optional result
// @Description Task status response with result when completed
type TaskStatusResponse struct {
	TaskID      string        `json:"task_id" example:"abc123def456789"`        // Task identifier
	Status      string        `json:"task_status" example:"SUCCESS"`            // Task status (PENDING, ACTIVE, SUCCESS, FAILURE)
	Result      *CheckResults `json:"task_result,omitempty"`                    // Check result (populated when status is SUCCESS)
	Error       *string       `json:"error,omitempty" example:"worker timeout"` // Error message (populated when status is FAILURE)
	CreatedAt   time.Time     `json:"created_at,omitempty"`                     // Task creation timestamp
	CompletedAt time.Time     `json:"completed_at,omitempty"`                   // Task completion timestamp
}

// HealthResponse indicates API health status
// @Description Health check response
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`                                    // Health status (ok, degraded)
	Warning string `json:"warning,omitempty" example:"no active workers detected"` // Warning message if degraded
}

// ErrorResponse represents an API error response
// @Description Error response returned for failed requests
type ErrorResponse struct {
	Error string `json:"error" example:"rate limit exceeded"` // Error message
}
