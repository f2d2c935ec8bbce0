package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"eaglesounds.in/internal/models"
	"eaglesounds.in/internal/services"
)

// SlideHandler handles slide and effect endpoints
type SlideHandler struct {
	slideService *services.SlideService
}

// NewSlideHandler creates a new SlideHandler
func NewSlideHandler(ss *services.SlideService) *SlideHandler {
	return &SlideHandler{slideService: ss}
}

// ListSlides handles GET /api/slides
func (h *SlideHandler) ListSlides(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.SlideList{Slides: h.slideService.GetAll()})
}

// GetSlide handles GET /api/slides/{index}
func (h *SlideHandler) GetSlide(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid slide index")
		return
	}

	slide, err := h.slideService.GetByIndex(index)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, slide)
}

// GetScene handles GET /api/effects/{type}?seed= - returns a generated effect scene
func (h *SlideHandler) GetScene(w http.ResponseWriter, r *http.Request) {
	effect, err := models.ParseEffectType(chi.URLParam(r, "type"))
	if err != nil || effect == models.EffectNone {
		respondError(w, http.StatusNotFound, "Unknown effect")
		return
	}

	seed, err := parseSeed(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid seed")
		return
	}

	scene, err := h.slideService.Scene(effect, seed)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, scene)
}

// SmokeFrames handles GET /api/effects/smoke/frames?width&height&frames&seed
func (h *SlideHandler) SmokeFrames(w http.ResponseWriter, r *http.Request) {
	// Clamp to reasonable values
	width := clamp(parseIntParam(r, "width", models.DefaultViewport.Width), 100, 7680)
	height := clamp(parseIntParam(r, "height", models.DefaultViewport.Height), 100, 4320)
	n := clamp(parseIntParam(r, "frames", 60), 1, 600)

	seed, err := parseSeed(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid seed")
		return
	}

	frames := h.slideService.SmokeFrames(models.Viewport{Width: width, Height: height}, n, seed)
	respondJSON(w, http.StatusOK, frames)
}
