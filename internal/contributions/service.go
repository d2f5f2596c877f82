package contributions

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("contribution not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Contribution, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Contribution, error) {
	now := time.Now().UTC()
	status := req.Status
	if status == "" {
		status = StatusPending
	}

	item := Contribution{
		ID:             primitive.NewObjectID().Hex(),
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		Organization:   strings.TrimSpace(req.Organization),
		Type:           req.Type,
		Tech:           trimAll(req.Tech),
		GitHub:         strings.TrimSpace(req.GitHub),
		Demo:           strings.TrimSpace(req.Demo),
		PullRequestURL: strings.TrimSpace(req.PullRequestURL),
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Contribution{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, req UpdateRequest) (Contribution, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Organization != nil {
		set["organization"] = strings.TrimSpace(*req.Organization)
	}
	if req.Type != nil {
		set["type"] = *req.Type
	}
	if req.Tech != nil {
		set["tech"] = trimAll(*req.Tech)
	}
	if req.GitHub != nil {
		set["github"] = strings.TrimSpace(*req.GitHub)
	}
	if req.Demo != nil {
		set["demo"] = strings.TrimSpace(*req.Demo)
	}
	if req.PullRequestURL != nil {
		set["pull_request_url"] = strings.TrimSpace(*req.PullRequestURL)
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(req.ID), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Contribution{}, ErrNotFound
		}
		return Contribution{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func trimAll(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, strings.TrimSpace(tag))
	}
	return out
}
