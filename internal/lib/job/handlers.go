package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deppfellow/blogs-server/internal/config"
	"github.com/deppfellow/blogs-server/internal/lib/email"
	"github.com/deppfellow/blogs-server/internal/model"
)

// BlogLookup is the slice of the blog repository the handlers need.
type BlogLookup interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error)
}

// Mailer sends the notification emails.
type Mailer interface {
	SendCommentNotificationEmail(ctx context.Context, to, authorName, blogTitle, commenter, comment string) error
}

// InitHandlers wires the dependencies used by task handlers.
// It must be called before Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger, blogs BlogLookup) {
	j.mailer = email.NewClient(cfg, logger)
	j.blogs = blogs
}

// handleCommentNotificationTask emails the author of the commented blog.
//
// A malformed payload or a blog without an author email is not retryable.
func (j *JobService) handleCommentNotificationTask(ctx context.Context, t *asynq.Task) error {
	var p CommentNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal comment notification payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", "comment_notification").
		Str("blog_id", p.BlogID).
		Str("comment_id", p.CommentID).
		Logger()

	blogID, err := primitive.ObjectIDFromHex(p.BlogID)
	if err != nil {
		return fmt.Errorf("invalid blog id %q: %w", p.BlogID, asynq.SkipRetry)
	}

	blog, err := j.blogs.FindByID(ctx, blogID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load blog for comment notification")
		return err
	}
	if blog == nil || blog.Author == nil || blog.Author.Email == "" {
		log.Info().Msg("blog has no author email, skipping comment notification")
		return nil
	}

	log.Info().Str("to", blog.Author.Email).Msg("processing comment notification task")

	err = j.mailer.SendCommentNotificationEmail(ctx, blog.Author.Email, blog.Author.Name, blog.Title, p.Username, p.Comment)
	if err != nil {
		log.Error().Err(err).Str("to", blog.Author.Email).Msg("failed to send comment notification")
		return err
	}

	log.Info().Str("to", blog.Author.Email).Msg("sent comment notification")
	return nil
}
