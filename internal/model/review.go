package model

import "time"

// Sentiment labels are a closed set, computed once when a review is
// created and never recomputed.
const (
	SentimentPositive = "positivo"
	SentimentNegative = "negativo"
	SentimentNeutral  = "neutro"
)

// Review represents a product review annotated with a sentiment label.
// The wire field names match the stored column names.
type Review struct {
	ID           int64     `db:"id" json:"id"`
	Producto     string    `db:"producto" json:"producto"`
	TextoResena  string    `db:"texto_resena" json:"texto_resena"`
	Sentimiento  string    `db:"sentimiento" json:"sentimiento"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UsuarioEmail string    `db:"usuario_email" json:"usuario_email"`
}

// CreateReviewRequest represents a review submission.
type CreateReviewRequest struct {
	Producto    string `json:"producto"`
	TextoResena string `json:"texto_resena"`
}
