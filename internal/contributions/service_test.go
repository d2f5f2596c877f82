package contributions

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pubudubandara/portfolio-new/internal/validation"
)

type fakeRepo struct {
	items map[string]Contribution
	seq   []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]Contribution)}
}

func (f *fakeRepo) List(ctx context.Context) ([]Contribution, error) {
	out := make([]Contribution, 0, len(f.items))
	for _, id := range f.seq {
		if c, ok := f.items[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) Create(ctx context.Context, item Contribution) error {
	f.items[item.ID] = item
	f.seq = append(f.seq, item.ID)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, set bson.M) (Contribution, error) {
	c, ok := f.items[id]
	if !ok {
		return Contribution{}, mongo.ErrNoDocuments
	}
	if v, ok := set["status"]; ok {
		c.Status = v.(string)
	}
	if v, ok := set["title"]; ok {
		c.Title = v.(string)
	}
	f.items[id] = c
	return c, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func TestCreateDefaultsStatusToPending(t *testing.T) {
	svc := NewService(newFakeRepo())

	created, err := svc.Create(context.Background(), CreateRequest{
		Title:        "Fix flaky test",
		Description:  "Stabilized the retry path",
		Organization: "chi",
		Type:         "Bug Fix",
		Tech:         []string{"Go"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Status != StatusPending {
		t.Fatalf("expected default status %q, got %q", StatusPending, created.Status)
	}
}

func TestStatusTransition(t *testing.T) {
	svc := NewService(newFakeRepo())

	created, err := svc.Create(context.Background(), CreateRequest{
		Title:        "Add docs",
		Description:  "New guide",
		Organization: "mongo",
		Type:         "Documentation",
		Tech:         []string{"Go"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	status := "Merged"
	updated, err := svc.Update(context.Background(), UpdateRequest{ID: created.ID, Status: &status})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Status != "Merged" {
		t.Fatalf("status not applied: %q", updated.Status)
	}
}

func TestDeleteUnknownContribution(t *testing.T) {
	svc := NewService(newFakeRepo())
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTypeAndStatusEnumsValidated(t *testing.T) {
	val := validation.New()

	ok := CreateRequest{
		Title:        "t",
		Description:  "d",
		Organization: "o",
		Type:         "Open Source",
		Tech:         []string{"Go"},
		Status:       "Merged",
	}
	if err := val.Struct(ok); err != nil {
		t.Fatalf("valid enums should pass: %v", err)
	}

	bad := ok
	bad.Type = "Hobby"
	if err := val.Struct(bad); err == nil {
		t.Fatal("unknown type should fail validation")
	}

	bad = ok
	bad.Status = "Abandoned"
	if err := val.Struct(bad); err == nil {
		t.Fatal("unknown status should fail validation")
	}
}
