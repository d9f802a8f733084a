// Package classifier labels review text with a sentiment from a closed
// set by delegating to an external text-classification service.
package classifier

import (
	"context"
	"strings"

	"github.com/resenia/resenia-go/internal/model"
)

// Classifier labels text as positivo, negativo or neutro.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// NormalizeLabel maps a free-text model response onto the closed label
// set. Matching is case-insensitive substring containment; first match
// wins in the order positivo, negativo, neutro. Anything else — an empty
// response, an answer in an unexpected language — degrades to neutro.
func NormalizeLabel(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.Contains(raw, model.SentimentPositive):
		return model.SentimentPositive
	case strings.Contains(raw, model.SentimentNegative):
		return model.SentimentNegative
	case strings.Contains(raw, model.SentimentNeutral):
		return model.SentimentNeutral
	default:
		return model.SentimentNeutral
	}
}
