package projects

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("project not found")

type AssetRemover interface {
	Remove(ctx context.Context, id string) error
}

type Service struct {
	repo   Repository
	assets AssetRemover
	log    *slog.Logger
}

func NewService(repo Repository, assets AssetRemover, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		assets: assets,
		log:    log,
	}
}

func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Project, error) {
	now := time.Now().UTC()
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	item := Project{
		ID:          primitive.NewObjectID().Hex(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		ImageID:     strings.TrimSpace(req.ImageID),
		Tech:        trimAll(req.Tech),
		GitHub:      strings.TrimSpace(req.GitHub),
		Demo:        strings.TrimSpace(req.Demo),
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Project{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, req UpdateRequest) (Project, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		set["image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if req.ImageID != nil {
		set["image_id"] = strings.TrimSpace(*req.ImageID)
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
	if req.Order != nil {
		set["order"] = *req.Order
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(req.ID), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	if item.ImageID != "" && s.assets != nil {
		if err := s.assets.Remove(ctx, item.ImageID); err != nil {
			s.log.Warn("project delete: asset removal failed",
				slog.String("project_id", id),
				slog.String("image_id", item.ImageID),
				slog.String("error", err.Error()),
			)
		}
	}
	return nil
}

// trimAll keeps tags as an ordered free-text list; no dedup or normalization
// beyond whitespace trimming.
func trimAll(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, strings.TrimSpace(tag))
	}
	return out
}
