package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"eaglesounds.in/internal/models"
	"eaglesounds.in/internal/services"
)

// ImageHandler handles image catalog endpoints
type ImageHandler struct {
	imageService *services.ImageService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(is *services.ImageService) *ImageHandler {
	return &ImageHandler{imageService: is}
}

// ListImages handles GET /api/images?category=&q=
func (h *ImageHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	images := h.imageService.Filter(r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	respondJSON(w, http.StatusOK, models.ImageCatalog{Images: images})
}

// GetImage handles GET /api/images/{id}
func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	image, err := h.imageService.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, image)
}
