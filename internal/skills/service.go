package skills

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

var ErrNotFound = errors.New("skill not found")

// AssetRemover deletes an uploaded image by its handle. Removal failures are
// tolerated: an orphaned remote asset is cheaper than a blocked record
// deletion.
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

func (s *Service) List(ctx context.Context) ([]Skill, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Skill, error) {
	now := time.Now().UTC()
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	item := Skill{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		ImageURL:  strings.TrimSpace(req.ImageURL),
		ImageID:   strings.TrimSpace(req.ImageID),
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Skill{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, req UpdateRequest) (Skill, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.ImageURL != nil {
		set["image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if req.ImageID != nil {
		set["image_id"] = strings.TrimSpace(*req.ImageID)
	}
	if req.Order != nil {
		set["order"] = *req.Order
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(req.ID), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Skill{}, ErrNotFound
		}
		return Skill{}, err
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
			s.log.Warn("skill delete: asset removal failed",
				slog.String("skill_id", id),
				slog.String("image_id", item.ImageID),
				slog.String("error", err.Error()),
			)
		}
	}
	return nil
}
