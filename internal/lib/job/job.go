// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - tasks are enqueued (producer) through asynq.Client
//   - a server runs workers that process them (consumer) through asynq.Server
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/blogs-server/internal/config"
	"github.com/deppfellow/blogs-server/internal/model"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger
	mailer Mailer
	blogs  BlogLookup
}

// NewJobService creates a JobService that uses the Redis address from cfg.
//
// Queue weights give "critical" tasks the largest worker share.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the worker server in the background.
func (j *JobService) Start() error {
	if j.mailer == nil || j.blogs == nil {
		return fmt.Errorf("job handlers not initialized")
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskCommentNotification, j.handleCommentNotificationTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop shuts the worker server down and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// NotifyComment enqueues a notification for a freshly inserted comment.
func (j *JobService) NotifyComment(ctx context.Context, comment *model.Comment) error {
	task, err := NewCommentNotificationTask(CommentNotificationPayload{
		CommentID: comment.ID.Hex(),
		BlogID:    comment.BlogID.Hex(),
		Username:  comment.Username,
		Comment:   comment.Comment,
	})
	if err != nil {
		return fmt.Errorf("build comment notification task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue comment notification: %w", err)
	}

	j.logger.Debug().Str("task_id", info.ID).Str("queue", info.Queue).Msg("enqueued comment notification")
	return nil
}
