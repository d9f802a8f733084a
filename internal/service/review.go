package service

import (
	"context"
	"errors"

	"github.com/resenia/resenia-go/internal/classifier"
	"github.com/resenia/resenia-go/internal/model"
	"github.com/resenia/resenia-go/internal/repository"
)

var (
	ErrProductoRequired = errors.New("producto is required")
	ErrTextoRequired    = errors.New("texto_resena is required")
)

// ReviewService handles review submission and listing.
type ReviewService struct {
	reviews    *repository.ReviewRepository
	classifier classifier.Classifier
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews *repository.ReviewRepository, c classifier.Classifier) *ReviewService {
	return &ReviewService{reviews: reviews, classifier: c}
}

// Create classifies the review text and persists the review with its
// sentiment label. The label is computed exactly once, here; it is never
// recomputed. If persistence fails after classification, the label is
// simply discarded with the request.
func (s *ReviewService) Create(ctx context.Context, authorEmail string, req model.CreateReviewRequest) (model.Review, error) {
	if req.Producto == "" {
		return model.Review{}, ErrProductoRequired
	}
	if req.TextoResena == "" {
		return model.Review{}, ErrTextoRequired
	}

	sentimiento, err := s.classifier.Classify(ctx, req.TextoResena)
	if err != nil {
		return model.Review{}, err
	}

	review := model.Review{
		Producto:     req.Producto,
		TextoResena:  req.TextoResena,
		Sentimiento:  sentimiento,
		UsuarioEmail: authorEmail,
	}

	if err := s.reviews.Create(ctx, &review); err != nil {
		return model.Review{}, err
	}

	return review, nil
}

// ListByProduct returns all reviews for a product, newest first. A
// product with no reviews yields an empty slice, not an error.
func (s *ReviewService) ListByProduct(ctx context.Context, producto string) ([]model.Review, error) {
	reviews, err := s.reviews.ListByProduct(ctx, producto)
	if err != nil {
		return nil, err
	}

	if reviews == nil {
		reviews = []model.Review{}
	}
	return reviews, nil
}
