package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deppfellow/blogs-server/internal/errs"
	"github.com/deppfellow/blogs-server/internal/mocks"
	"github.com/deppfellow/blogs-server/internal/model"
)

func ptr[T any](v T) *T { return &v }

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *errs.HTTPError with code %s", err, code)
	}
	if httpErr.Code != code {
		t.Fatalf("code = %s, want %s", httpErr.Code, code)
	}
}

func TestBlogServiceGet(t *testing.T) {
	existing := model.Blog{ID: primitive.NewObjectID(), Title: "Hello"}
	svc := NewBlogService(mocks.NewBlogRepository(existing))
	ctx := context.Background()

	blog, err := svc.Get(ctx, &model.BlogIDRequest{ID: existing.ID.Hex()})
	if err != nil || blog == nil || blog.Title != "Hello" {
		t.Fatalf("Get(existing) = %+v, %v", blog, err)
	}

	blog, err = svc.Get(ctx, &model.BlogIDRequest{ID: primitive.NewObjectID().Hex()})
	if err != nil || blog != nil {
		t.Fatalf("Get(missing) = %+v, %v; want nil, nil", blog, err)
	}

	_, err = svc.Get(ctx, &model.BlogIDRequest{ID: "not-an-id"})
	assertCode(t, err, errs.CodeInvalidID)
}

func TestBlogServiceUpdateMergesFields(t *testing.T) {
	id := primitive.NewObjectID()
	repo := mocks.NewBlogRepository(model.Blog{ID: id, Title: "A", Body: "B"})
	svc := NewBlogService(repo)
	ctx := context.Background()

	ack, err := svc.Update(ctx, &model.UpdateBlogRequest{ID: id.Hex(), Title: ptr("C")})
	if err != nil {
		t.Fatalf("Update error = %v", err)
	}
	if ack.MatchedCount != 1 || ack.ModifiedCount != 1 || ack.UpsertedCount != 0 {
		t.Errorf("ack = %+v", ack)
	}

	blog, _ := repo.FindByID(ctx, id)
	if blog.Title != "C" || blog.Body != "B" {
		t.Errorf("blog = %+v, want title C and body B", blog)
	}
}

func TestBlogServiceUpdateUpserts(t *testing.T) {
	repo := mocks.NewBlogRepository()
	svc := NewBlogService(repo)
	ctx := context.Background()
	id := primitive.NewObjectID()

	ack, err := svc.Update(ctx, &model.UpdateBlogRequest{ID: id.Hex(), Title: ptr("X")})
	if err != nil {
		t.Fatalf("Update error = %v", err)
	}
	if ack.UpsertedCount != 1 || ack.UpsertedID == nil || *ack.UpsertedID != id {
		t.Errorf("ack = %+v, want upsert at %s", ack, id.Hex())
	}

	blog, _ := repo.FindByID(ctx, id)
	if blog == nil || blog.Title != "X" || blog.Body != "" {
		t.Errorf("blog = %+v, want only title X", blog)
	}
}

func TestBlogServiceUpdateRejects(t *testing.T) {
	svc := NewBlogService(mocks.NewBlogRepository())
	ctx := context.Background()

	_, err := svc.Update(ctx, &model.UpdateBlogRequest{ID: primitive.NewObjectID().Hex()})
	assertCode(t, err, errs.CodeMissingFields)

	_, err = svc.Update(ctx, &model.UpdateBlogRequest{ID: "zzz", Title: ptr("x")})
	assertCode(t, err, errs.CodeInvalidID)
}

func TestCommentServiceCreate(t *testing.T) {
	repo := mocks.NewCommentRepository()
	notifier := &mocks.Notifier{}
	svc := NewCommentService(repo, notifier)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	svc.now = func() time.Time { return fixed }

	blogID := primitive.NewObjectID()
	ack, err := svc.Create(context.Background(), &model.CreateCommentRequest{
		BlogID:   blogID.Hex(),
		Username: "jane",
		Comment:  "hi",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}
	if !ack.Acknowledged || ack.InsertedID.IsZero() {
		t.Errorf("ack = %+v", ack)
	}

	stored := repo.All()
	if len(stored) != 1 {
		t.Fatalf("stored %d comments, want 1", len(stored))
	}
	if stored[0].BlogID != blogID {
		t.Errorf("blogId = %s, want %s", stored[0].BlogID.Hex(), blogID.Hex())
	}
	if !stored[0].CreatedAt.Equal(fixed) || stored[0].CreatedAt.Location() != time.UTC {
		t.Errorf("createdAt = %v, want %v in UTC", stored[0].CreatedAt, fixed)
	}

	if len(notifier.Comments) != 1 || notifier.Comments[0].ID != ack.InsertedID {
		t.Errorf("notified %+v, want the inserted comment", notifier.Comments)
	}
}

func TestCommentServiceCreateIgnoresNotifierFailure(t *testing.T) {
	repo := mocks.NewCommentRepository()
	svc := NewCommentService(repo, &mocks.Notifier{Err: errors.New("redis down")})

	_, err := svc.Create(context.Background(), &model.CreateCommentRequest{
		BlogID:   primitive.NewObjectID().Hex(),
		Username: "jane",
		Comment:  "hi",
	})
	if err != nil {
		t.Fatalf("Create error = %v, want nil", err)
	}
	if len(repo.All()) != 1 {
		t.Error("comment was not stored")
	}
}

func TestCommentServiceInvalidBlogID(t *testing.T) {
	repo := mocks.NewCommentRepository()
	svc := NewCommentService(repo, nil)

	_, err := svc.Create(context.Background(), &model.CreateCommentRequest{BlogID: "bad", Username: "u", Comment: "c"})
	assertCode(t, err, errs.CodeInvalidID)
	if len(repo.All()) != 0 {
		t.Error("comment stored despite invalid blogId")
	}

	_, err = svc.ListByBlog(context.Background(), &model.ListCommentsRequest{BlogID: "bad"})
	assertCode(t, err, errs.CodeInvalidID)
}

func TestWishlistServiceAdd(t *testing.T) {
	repo := mocks.NewWishlistRepository()
	svc := NewWishlistService(repo)
	ctx := context.Background()
	req := &model.AddWishlistItemRequest{BlogID: "b1", UserEmail: "a@x.io", Title: "T"}

	item, err := svc.Add(ctx, req)
	if err != nil {
		t.Fatalf("Add error = %v", err)
	}
	if item.ID.IsZero() || item.Title != "T" {
		t.Errorf("item = %+v", item)
	}

	_, err = svc.Add(ctx, req)
	assertCode(t, err, errs.CodeDuplicateWishlistItem)
	if repo.Len() != 1 {
		t.Errorf("stored %d items, want 1", repo.Len())
	}

	if _, err := svc.Add(ctx, &model.AddWishlistItemRequest{BlogID: "b1", UserEmail: "b@x.io"}); err != nil {
		t.Errorf("same blog for another user: error = %v", err)
	}
}

func TestWishlistServiceListAndRemove(t *testing.T) {
	keep := model.WishlistItem{ID: primitive.NewObjectID(), BlogID: "b1", UserEmail: "a@x.io"}
	other := model.WishlistItem{ID: primitive.NewObjectID(), BlogID: "b2", UserEmail: "A@x.io"}
	repo := mocks.NewWishlistRepository(keep, other)
	svc := NewWishlistService(repo)
	ctx := context.Background()

	items, err := svc.ListByEmail(ctx, &model.GetWishlistRequest{Email: "a@x.io"})
	if err != nil || len(items) != 1 || items[0].ID != keep.ID {
		t.Fatalf("ListByEmail = %+v, %v; want only exact match", items, err)
	}

	ack, err := svc.Remove(ctx, &model.RemoveWishlistItemRequest{ID: keep.ID.Hex()})
	if err != nil || ack.DeletedCount != 1 {
		t.Fatalf("Remove(existing) = %+v, %v", ack, err)
	}

	ack, err = svc.Remove(ctx, &model.RemoveWishlistItemRequest{ID: keep.ID.Hex()})
	if err != nil || !ack.Acknowledged || ack.DeletedCount != 0 {
		t.Fatalf("Remove(missing) = %+v, %v; want acknowledged with 0 deleted", ack, err)
	}

	_, err = svc.Remove(ctx, &model.RemoveWishlistItemRequest{ID: "nope"})
	assertCode(t, err, errs.CodeInvalidID)
}

func TestServicesPropagateStoreErrors(t *testing.T) {
	repo := mocks.NewBlogRepository()
	repo.Err = mocks.ErrStoreDown
	svc := NewBlogService(repo)

	if _, err := svc.List(context.Background()); !errors.Is(err, mocks.ErrStoreDown) {
		t.Errorf("List error = %v, want store error", err)
	}
}
