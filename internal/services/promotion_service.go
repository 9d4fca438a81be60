// internal/services/promotion_service.go
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
)

const fileTypePromotions = "promotions"

type PromotionService struct {
	promotions repository.PromotionRepository
	files      FileURLResolver
}

type CreatePromotionRequest struct {
	ImageFile   string `json:"image_file" validate:"required,max=500"`
	RedirectURL string `json:"redirect_url" validate:"required,url,max=500"`
	Priority    int    `json:"priority" validate:"min=0"`
}

type UpdatePromotionRequest struct {
	ImageFile   *string `json:"image_file,omitempty" validate:"omitempty,max=500"`
	RedirectURL *string `json:"redirect_url,omitempty" validate:"omitempty,url,max=500"`
	Priority    *int    `json:"priority,omitempty" validate:"omitempty,min=0"`
}

type PromotionResponse struct {
	ID          uuid.UUID `json:"id"`
	ImageURL    string    `json:"image_url"`
	RedirectURL string    `json:"redirect_url"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewPromotionService(promotions repository.PromotionRepository, files FileURLResolver) *PromotionService {
	return &PromotionService{promotions: promotions, files: files}
}

func (s *PromotionService) ListPromotions(ctx context.Context) ([]PromotionResponse, error) {
	promotions, err := s.promotions.FindAll(ctx)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	responses := make([]PromotionResponse, 0, len(promotions))
	for i := range promotions {
		responses = append(responses, s.response(&promotions[i]))
	}
	return responses, nil
}

func (s *PromotionService) GetPromotion(ctx context.Context, id uuid.UUID) (*PromotionResponse, error) {
	promotion, err := s.promotions.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.PromotionNotFound(id.String()))
	}

	response := s.response(promotion)
	return &response, nil
}

func (s *PromotionService) CreatePromotion(ctx context.Context, req *CreatePromotionRequest) (*PromotionResponse, error) {
	promotion := &models.Promotion{
		ImageFile:   req.ImageFile,
		RedirectURL: req.RedirectURL,
		Priority:    req.Priority,
	}

	if err := s.promotions.Create(ctx, promotion); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	response := s.response(promotion)
	return &response, nil
}

func (s *PromotionService) UpdatePromotion(ctx context.Context, id uuid.UUID, req *UpdatePromotionRequest) (*PromotionResponse, error) {
	promotion, err := s.promotions.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.PromotionNotFound(id.String()))
	}

	if req.ImageFile != nil {
		promotion.ImageFile = *req.ImageFile
	}
	if req.RedirectURL != nil {
		promotion.RedirectURL = *req.RedirectURL
	}
	if req.Priority != nil {
		promotion.Priority = *req.Priority
	}

	if err := s.promotions.Save(ctx, promotion); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	response := s.response(promotion)
	return &response, nil
}

func (s *PromotionService) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	promotion, err := s.promotions.FindByID(ctx, id)
	if err != nil {
		return apperrors.FromDB(err, apperrors.PromotionNotFound(id.String()))
	}
	if err := s.promotions.Delete(ctx, promotion); err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}

// DeleteAllPromotions empties the carousel in one shot, the way campaigns
// are rotated out.
func (s *PromotionService) DeleteAllPromotions(ctx context.Context) error {
	if err := s.promotions.DeleteAll(ctx); err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}

func (s *PromotionService) response(promotion *models.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:          promotion.ID,
		ImageURL:    s.files.PublicURL(fileTypePromotions, promotion.ImageFile),
		RedirectURL: promotion.RedirectURL,
		Priority:    promotion.Priority,
		CreatedAt:   promotion.CreatedAt,
	}
}
