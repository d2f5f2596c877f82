package projects

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	items map[string]Project
	seq   []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]Project)}
}

func (f *fakeRepo) List(ctx context.Context) ([]Project, error) {
	out := make([]Project, 0, len(f.items))
	for _, id := range f.seq {
		if p, ok := f.items[id]; ok {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRepo) Create(ctx context.Context, item Project) error {
	f.items[item.ID] = item
	f.seq = append(f.seq, item.ID)
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (Project, error) {
	p, ok := f.items[id]
	if !ok {
		return Project{}, mongo.ErrNoDocuments
	}
	return p, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, set bson.M) (Project, error) {
	p, ok := f.items[id]
	if !ok {
		return Project{}, mongo.ErrNoDocuments
	}
	for k, v := range set {
		switch k {
		case "title":
			p.Title = v.(string)
		case "description":
			p.Description = v.(string)
		case "github":
			p.GitHub = v.(string)
		case "demo":
			p.Demo = v.(string)
		case "tech":
			p.Tech = v.([]string)
		case "order":
			p.Order = v.(int)
		}
	}
	f.items[id] = p
	return p, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

type noopAssets struct{}

func (noopAssets) Remove(ctx context.Context, id string) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProjectLifecycle(t *testing.T) {
	svc := NewService(newFakeRepo(), noopAssets{}, testLogger())

	created, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Portfolio",
		Description: "Personal site",
		ImageURL:    "https://x/p.png",
		ImageID:     "p1",
		Tech:        []string{"Next.js", "MongoDB"},
		GitHub:      "https://github.com/x/portfolio",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Demo != "" {
		t.Fatalf("demo should stay empty, got %q", created.Demo)
	}

	demo := "https://demo.example.com"
	updated, err := svc.Update(context.Background(), UpdateRequest{ID: created.ID, Demo: &demo})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Demo != demo {
		t.Fatalf("demo not applied: %q", updated.Demo)
	}
	if updated.Title != "Portfolio" {
		t.Fatalf("untouched field changed: %q", updated.Title)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestTechTagsKeepOrder(t *testing.T) {
	svc := NewService(newFakeRepo(), noopAssets{}, testLogger())

	created, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Tags",
		Description: "d",
		ImageURL:    "https://x/t.png",
		ImageID:     "t1",
		Tech:        []string{" Go ", "Go", "chi"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	want := []string{"Go", "Go", "chi"}
	if len(created.Tech) != len(want) {
		t.Fatalf("tags must not be deduplicated: %v", created.Tech)
	}
	for i := range want {
		if created.Tech[i] != want[i] {
			t.Fatalf("expected tags %v, got %v", want, created.Tech)
		}
	}
}
