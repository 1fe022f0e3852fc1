package checker

import (
	"context"
	"testing"
	"time"

	"github.com/craftping/mc-status-go/internal/models"
)

func TestCheckUnknownEdition(t *testing.T) {
	target := models.ServerTarget{Edition: "pocket", Host: "localhost", Port: 19132}

	result := Check(context.Background(), target, time.Second)

	if result.CommandStatus != models.CommandStatusError {
		t.Errorf("expected error status, got %s", result.CommandStatus)
	}
	if result.Online {
		t.Error("failed check must not report online")
	}
	if result.Error == "" {
		t.Error("expected an error message")
	}
}

func TestCheckUnreachableHost(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network test in short mode")
	}

	// TEST-NET-1, non-routable: the check must fail within the timeout,
	// never hang, never report a status.
	target := models.ServerTarget{Edition: "java", Host: "192.0.2.1", Port: 25565}

	start := time.Now()
	result := Check(context.Background(), target, 2*time.Second)
	elapsed := time.Since(start)

	if result.CommandStatus != models.CommandStatusError {
		t.Errorf("expected error status, got %s", result.CommandStatus)
	}
	if result.Error == "" {
		t.Error("expected an error message describing the failure")
	}
	if elapsed > 10*time.Second {
		t.Errorf("check took %s, expected it bounded by the timeout", elapsed)
	}
}

func TestCheckCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	target := models.ServerTarget{Edition: "java", Host: "192.0.2.1", Port: 25565}
	result := Check(ctx, target, 5*time.Second)

	if result.CommandStatus != models.CommandStatusError {
		t.Errorf("expected error status, got %s", result.CommandStatus)
	}
}

func TestRunWrapsDuration(t *testing.T) {
	target := models.ServerTarget{Edition: "pocket", Host: "localhost", Port: 1}

	results := Run(context.Background(), target, time.Second)

	if results.Result.CommandStatus != models.CommandStatusError {
		t.Errorf("expected error status, got %s", results.Result.CommandStatus)
	}
	if results.Duration < 0 {
		t.Errorf("negative duration: %f", results.Duration)
	}
}
