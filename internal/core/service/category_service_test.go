package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/domain"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	listCalls  int
	createErr  error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func cloneCategory(c *domain.Category) *domain.Category {
	clone := *c
	return &clone
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	r.listCalls++
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, cloneCategory(c))
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return cloneCategory(c), nil
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.categories[c.ID] = cloneCategory(c)
	return nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.categories[c.ID] = cloneCategory(c)
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return c, nil
}

func TestCategoryService_CRUD(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, newStubCache(), zerolog.Nop())

	created, err := svc.Create(context.Background(), "golang")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.Name != "golang" {
		t.Fatalf("unexpected category: %+v", created)
	}

	updated, err := svc.Update(context.Background(), created.ID, "go")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "go" {
		t.Fatalf("expected renamed category, got %+v", updated)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("expected removed category back, got %+v", deleted)
	}
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), newStubCache(), zerolog.Nop())

	if _, err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_List_CacheInvalidatedOnWrite(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, newStubCache(), zerolog.Nop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected cached second list, got %d repo calls", repo.listCalls)
	}

	if _, err := svc.Create(context.Background(), "news"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	categories, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(categories) != 1 || repo.listCalls != 2 {
		t.Fatalf("expected fresh list after create: %d categories, %d repo calls", len(categories), repo.listCalls)
	}
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.createErr = &domain.Error{Code: domain.CodeConflict, Message: "category name already exists"}
	svc := NewCategoryService(repo, newStubCache(), zerolog.Nop())

	_, err := svc.Create(context.Background(), "dup")
	var de *domain.Error
	if !errors.As(err, &de) || de.Code != domain.CodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}
