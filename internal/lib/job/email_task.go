package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskCommentNotification is the job type name stored in Redis.
	TaskCommentNotification = "email:comment_notification"
)

// CommentNotificationPayload is the JSON payload of a comment notification task.
type CommentNotificationPayload struct {
	CommentID string `json:"comment_id"`
	BlogID    string `json:"blog_id"`
	Username  string `json:"username"`
	Comment   string `json:"comment"`
}

// NewCommentNotificationTask builds the task that emails a blog author about a new comment.
//
// Notifications are low priority: retried up to 3 times, 30s per attempt.
func NewCommentNotificationTask(p CommentNotificationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskCommentNotification,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
