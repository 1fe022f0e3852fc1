// Package tasks provides the async status check queue using Asynq/Redis
// or an in-memory fallback. Delegates queueing to Asynq, caches results in
// Redis with a TTL.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/craftping/mc-status-go/internal/models"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const (
	// TaskTypeStatusCheck is the task type identifier for status check tasks
	TaskTypeStatusCheck = "mc:status"

	// DefaultResultTTL is how long completed check results stay cached in Redis.
	DefaultResultTTL = 24 * time.Hour
)

// StatusCheckPayload is the wire format of an enqueued check.
type StatusCheckPayload struct {
	TaskID    string              `json:"task_id"`
	Target    models.ServerTarget `json:"target"`
	CreatedAt string              `json:"created_at"`
}

// Client wraps Asynq for task enqueueing and Redis for result caching.
// Results are written by the worker; this client only reads them.
type Client struct {
	asynqClient *asynq.Client
	inspector   *asynq.Inspector
	redisClient *redis.Client
}

// ClientInterface allows swapping between Asynq and memory implementations.
type ClientInterface interface {
	EnqueueStatusCheck(ctx context.Context, target models.ServerTarget) (string, error)
	GetTaskStatus(ctx context.Context, taskID string) (*models.TaskStatusResponse, error)
	Close() error
}

// ResultKey is the Redis key holding a completed check result.
func ResultKey(taskID string) string {
	return fmt.Sprintf("mcstatus:result:%s", taskID)
}

// NewClient creates Asynq client with Redis result backend.
func NewClient(redisAddr string) *Client {
	redisOpts := asynq.RedisClientOpt{Addr: redisAddr}
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})

	return &Client{
		asynqClient: asynq.NewClient(redisOpts),
		inspector:   asynq.NewInspector(redisOpts),
		redisClient: rdb,
	}
}

// EnqueueStatusCheck creates a task with a UUID and enqueues it.
// One retry at the task level only covers worker crashes - the check
// itself never retries the server.
func (c *Client) EnqueueStatusCheck(ctx context.Context, target models.ServerTarget) (string, error) {
	id := uuid.NewString()

	payload := StatusCheckPayload{
		TaskID:    id,
		Target:    target,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskTypeStatusCheck, data)
	opts := []asynq.Option{
		asynq.TaskID(id),
		asynq.MaxRetry(1),
	}

	if _, err := c.asynqClient.EnqueueContext(ctx, task, opts...); err != nil {
		return "", fmt.Errorf("enqueue failed: %w", err)
	}

	return id, nil
}

// Close shuts down all connections.
func (c *Client) Close() error {
	var errs []error

	if err := c.inspector.Close(); err != nil {
		errs = append(errs, fmt.Errorf("inspector: %w", err))
	}

	if err := c.redisClient.Close(); err != nil {
		errs = append(errs, fmt.Errorf("redis: %w", err))
	}

	if err := c.asynqClient.Close(); err != nil {
		errs = append(errs, fmt.Errorf("asynq: %w", err))
	}

	return errors.Join(errs...)
}

// HasActiveWorkers checks Asynq inspector for connected workers.
func (c *Client) HasActiveWorkers(_ context.Context) bool {
	servers, err := c.inspector.Servers()
	if err != nil {
		return false
	}

	return len(servers) > 0
}

// GetTaskStatus checks the Redis result cache first, falls back to the
// Asynq inspector for pending and active tasks.
func (c *Client) GetTaskStatus(ctx context.Context, taskID string) (*models.TaskStatusResponse, error) {
	resultJSON, err := c.redisClient.Get(ctx, ResultKey(taskID)).Result()

	if err == nil {
		// Result cached - task completed
		var res models.CheckResults
		if json.Unmarshal([]byte(resultJSON), &res) == nil {
			return &models.TaskStatusResponse{
				TaskID: taskID,
				Status: "SUCCESS",
				Result: &res,
			}, nil
		}
	}

	// Not cached - check Asynq queue
	taskInfo, err := c.inspector.GetTaskInfo("default", taskID)
	if err != nil {
		return nil, fmt.Errorf("not found")
	}

	response := &models.TaskStatusResponse{
		TaskID:      taskID,
		CreatedAt:   taskInfo.NextProcessAt,
		CompletedAt: taskInfo.CompletedAt,
	}

	switch taskInfo.State {
	case asynq.TaskStateActive:
		response.Status = "ACTIVE"
	case asynq.TaskStateRetry:
		response.Status = "RETRY"
	case asynq.TaskStateArchived:
		response.Status = "FAILURE"
		if taskInfo.LastErr != "" {
			errMsg := taskInfo.LastErr
			response.Error = &errMsg
		}
	default:
		response.Status = "PENDING"
	}

	return response, nil
}
