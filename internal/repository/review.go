package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/resenia/resenia-go/internal/model"
)

// ReviewRepository handles review persistence operations.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review, stamping it with the server clock and
// setting the generated ID on the review struct.
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	review.CreatedAt = time.Now().UTC()

	query := `INSERT INTO reviews (producto, texto_resena, sentimiento, created_at, usuario_email)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		review.Producto, review.TextoResena, review.Sentimiento, review.CreatedAt, review.UsuarioEmail)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	review.ID = id
	return nil
}

// ListByProduct retrieves all reviews for a product, newest first.
// Equal timestamps fall back to insertion order via the rowid.
func (r *ReviewRepository) ListByProduct(ctx context.Context, producto string) ([]model.Review, error) {
	query := `SELECT id, producto, texto_resena, sentimiento, created_at, usuario_email
		FROM reviews WHERE producto = ? ORDER BY created_at DESC, id DESC`

	var reviews []model.Review
	if err := r.db.SelectContext(ctx, &reviews, query, producto); err != nil {
		return nil, err
	}

	return reviews, nil
}
