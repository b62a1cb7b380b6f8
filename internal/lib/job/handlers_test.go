package job

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deppfellow/blogs-server/internal/model"
)

type fakeBlogs struct {
	blog *model.Blog
	err  error
}

func (f *fakeBlogs) FindByID(context.Context, primitive.ObjectID) (*model.Blog, error) {
	return f.blog, f.err
}

type sentEmail struct {
	to, authorName, blogTitle, commenter, comment string
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

func (f *fakeMailer) SendCommentNotificationEmail(_ context.Context, to, authorName, blogTitle, commenter, comment string) error {
	f.sent = append(f.sent, sentEmail{to, authorName, blogTitle, commenter, comment})
	return f.err
}

func newTestService(blogs BlogLookup, mailer Mailer) *JobService {
	logger := zerolog.New(io.Discard)
	return &JobService{logger: &logger, blogs: blogs, mailer: mailer}
}

func newTask(t *testing.T, blogID string) *asynq.Task {
	t.Helper()
	task, err := NewCommentNotificationTask(CommentNotificationPayload{
		CommentID: primitive.NewObjectID().Hex(),
		BlogID:    blogID,
		Username:  "jane",
		Comment:   "nice post",
	})
	if err != nil {
		t.Fatalf("NewCommentNotificationTask error = %v", err)
	}
	return task
}

func TestNewCommentNotificationTask(t *testing.T) {
	blogID := primitive.NewObjectID().Hex()
	task := newTask(t, blogID)

	if task.Type() != TaskCommentNotification {
		t.Errorf("Type() = %q, want %q", task.Type(), TaskCommentNotification)
	}

	var p CommentNotificationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if p.BlogID != blogID || p.Username != "jane" {
		t.Errorf("payload = %+v", p)
	}
}

func TestHandleCommentNotificationSendsToAuthor(t *testing.T) {
	blogID := primitive.NewObjectID()
	mailer := &fakeMailer{}
	svc := newTestService(&fakeBlogs{blog: &model.Blog{
		ID:     blogID,
		Title:  "Hello",
		Author: &model.Author{Name: "John", Email: "john@example.com"},
	}}, mailer)

	if err := svc.handleCommentNotificationTask(context.Background(), newTask(t, blogID.Hex())); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(mailer.sent))
	}
	got := mailer.sent[0]
	if got.to != "john@example.com" || got.blogTitle != "Hello" || got.commenter != "jane" {
		t.Errorf("sent = %+v", got)
	}
}

func TestHandleCommentNotificationSkips(t *testing.T) {
	tests := []struct {
		name string
		blog *model.Blog
	}{
		{name: "missing blog", blog: nil},
		{name: "no author", blog: &model.Blog{Title: "x"}},
		{name: "author without email", blog: &model.Blog{Title: "x", Author: &model.Author{Name: "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			svc := newTestService(&fakeBlogs{blog: tt.blog}, mailer)

			err := svc.handleCommentNotificationTask(context.Background(), newTask(t, primitive.NewObjectID().Hex()))
			if err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if len(mailer.sent) != 0 {
				t.Errorf("sent %d emails, want 0", len(mailer.sent))
			}
		})
	}
}

func TestHandleCommentNotificationErrors(t *testing.T) {
	t.Run("bad payload is not retried", func(t *testing.T) {
		svc := newTestService(&fakeBlogs{}, &fakeMailer{})
		err := svc.handleCommentNotificationTask(context.Background(), asynq.NewTask(TaskCommentNotification, []byte("{")))
		if !errors.Is(err, asynq.SkipRetry) {
			t.Errorf("error = %v, want SkipRetry", err)
		}
	})

	t.Run("bad blog id is not retried", func(t *testing.T) {
		svc := newTestService(&fakeBlogs{}, &fakeMailer{})
		err := svc.handleCommentNotificationTask(context.Background(), newTask(t, "nope"))
		if !errors.Is(err, asynq.SkipRetry) {
			t.Errorf("error = %v, want SkipRetry", err)
		}
	})

	t.Run("send failure is retried", func(t *testing.T) {
		sendErr := errors.New("resend down")
		svc := newTestService(&fakeBlogs{blog: &model.Blog{
			Author: &model.Author{Email: "a@example.com"},
		}}, &fakeMailer{err: sendErr})

		err := svc.handleCommentNotificationTask(context.Background(), newTask(t, primitive.NewObjectID().Hex()))
		if !errors.Is(err, sendErr) || errors.Is(err, asynq.SkipRetry) {
			t.Errorf("error = %v, want retryable send error", err)
		}
	})
}
