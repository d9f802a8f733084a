package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resenia/resenia-go/internal/middleware"
	"github.com/resenia/resenia-go/internal/model"
	"github.com/resenia/resenia-go/internal/service"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service *service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

// HandleCreate handles POST /reviews requests. Requires a bearer token;
// the review is classified and persisted, and the full record returned.
func (h *ReviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	review, err := h.service.Create(r.Context(), email, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductoRequired), errors.Is(err, service.ErrTextoRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, review)
}

// HandleList handles GET /reviews/{producto} requests. Public; returns
// all reviews for the product, newest first, possibly empty.
func (h *ReviewHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	producto := chi.URLParam(r, "producto")

	reviews, err := h.service.ListByProduct(r.Context(), producto)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}
