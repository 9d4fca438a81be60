// internal/services/tag_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
)

type TagService struct {
	tags repository.TagRepository
}

type TagRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tags.FindAll(ctx)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return tags, nil
}

func (s *TagService) GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.TagNotFound())
	}
	return tag, nil
}

func (s *TagService) CreateTag(ctx context.Context, req *TagRequest) (*models.Tag, error) {
	tag := &models.Tag{Name: req.Name}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return tag, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id uuid.UUID, req *TagRequest) (*models.Tag, error) {
	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.TagNotFound())
	}

	tag.Name = req.Name
	if err := s.tags.Save(ctx, tag); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return tag, nil
}

func (s *TagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return apperrors.FromDB(err, apperrors.TagNotFound())
	}
	if err := s.tags.Delete(ctx, tag); err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}
