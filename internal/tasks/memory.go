package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/craftping/mc-status-go/internal/checker"
	"github.com/craftping/mc-status-go/internal/config"
	"github.com/craftping/mc-status-go/internal/models"
)

type memoryClient struct {
	mu      sync.Mutex
	tasks   map[string]*models.CheckResults
	ttl     map[string]time.Time
	timeout time.Duration
}

// NewMemoryClient creates an in-memory task queue for dev/testing without
// Redis. Returns ClientInterface for consistent API with the Asynq
// implementation.
func NewMemoryClient(cfg *config.APIConfig) ClientInterface {
	return &memoryClient{
		tasks:   make(map[string]*models.CheckResults),
		ttl:     make(map[string]time.Time),
		timeout: time.Duration(cfg.GetCheckTimeoutMs()) * time.Millisecond,
	}
}

// EnqueueStatusCheck executes the check in a background goroutine.
// Uses an independent context - the HTTP request may end before the check
// completes.
func (m *memoryClient) EnqueueStatusCheck(_ context.Context, target models.ServerTarget) (string, error) {
	id := "mem-" + time.Now().Format("20060102150405.000000000")

	m.mu.Lock()
	m.tasks[id] = nil
	m.ttl[id] = time.Now().Add(1 * time.Hour)
	m.mu.Unlock()

	go func() {
		results := checker.Run(context.Background(), target, m.timeout)

		m.mu.Lock()
		m.tasks[id] = &results
		m.mu.Unlock()
	}()

	return id, nil
}

func (m *memoryClient) Close() error {
	return nil
}

// GetTaskStatus returns PENDING while executing, SUCCESS when done.
func (m *memoryClient) GetTaskStatus(_ context.Context, taskID string) (*models.TaskStatusResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.ttl[taskID]
	if !exists {
		return nil, fmt.Errorf("not found")
	}

	res := m.tasks[taskID]

	if res == nil {
		return &models.TaskStatusResponse{
			TaskID: taskID,
			Status: "PENDING",
		}, nil
	}

	return &models.TaskStatusResponse{
		TaskID: taskID,
		Status: "SUCCESS",
		Result: res,
	}, nil
}
