package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/craftping/mc-status-go/internal/config"
	"github.com/craftping/mc-status-go/internal/models"
)

func TestMemoryClientLifecycle(t *testing.T) {
	client := NewMemoryClient(&config.APIConfig{})

	// Unknown edition fails inside the checker without touching the
	// network, which keeps this test offline.
	target := models.ServerTarget{Edition: "pocket", Host: "localhost", Port: 1}

	id, err := client.EnqueueStatusCheck(context.Background(), target)
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a task id")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		status, err := client.GetTaskStatus(context.Background(), id)
		if err != nil {
			t.Fatalf("poll failed: %v", err)
		}
		if status.Status == "SUCCESS" {
			if status.Result == nil {
				t.Fatal("SUCCESS without result")
			}
			if status.Result.Result.CommandStatus != models.CommandStatusError {
				t.Errorf("expected error result, got %+v", status.Result.Result)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("task did not complete in time")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := client.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}

func TestMemoryClientUnknownTask(t *testing.T) {
	client := NewMemoryClient(&config.APIConfig{})

	if _, err := client.GetTaskStatus(context.Background(), "nope"); err == nil {
		t.Error("expected error for unknown task")
	}
}
