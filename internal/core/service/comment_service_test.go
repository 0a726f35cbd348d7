package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

type stubCommentRepo struct {
	comments map[string]*domain.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func cloneComment(c *domain.Comment) *domain.Comment {
	clone := *c
	return &clone
}

func (r *stubCommentRepo) List(_ context.Context) ([]*domain.Comment, error) {
	out := make([]*domain.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		out = append(out, cloneComment(c))
	}
	return out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	return cloneComment(c), nil
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	r.comments[c.ID] = cloneComment(c)
	return nil
}

func (r *stubCommentRepo) Update(_ context.Context, c *domain.Comment) error {
	if _, ok := r.comments[c.ID]; !ok {
		return domain.ErrCommentNotFound
	}
	r.comments[c.ID] = cloneComment(c)
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return c, nil
}

func TestCommentService_Create_ChecksArticle(t *testing.T) {
	articles := newStubArticleRepo()
	svc := NewCommentService(newStubCommentRepo(), articles, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CommentInput{
		UserID:    "u-1",
		ArticleID: "missing",
		Content:   "nice read",
	})
	if !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound for dangling comment, got %v", err)
	}
}

func TestCommentService_CRUD(t *testing.T) {
	articles := newStubArticleRepo()
	article := &domain.Article{ID: "a-1", Title: "t", Content: "c", AuthorID: "u-1"}
	if err := articles.Create(context.Background(), article); err != nil {
		t.Fatalf("seed article: %v", err)
	}
	svc := NewCommentService(newStubCommentRepo(), articles, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CommentInput{
		UserID:    "u-2",
		ArticleID: "a-1",
		Content:   "first!",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.ArticleID != "a-1" {
		t.Fatalf("unexpected comment: %+v", created)
	}

	updated, err := svc.Update(context.Background(), created.ID, "edited")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("expected edited content, got %+v", updated)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("expected removed comment back, got %+v", deleted)
	}

	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound after delete, got %v", err)
	}
}
