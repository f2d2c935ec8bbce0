package handlers

import (
	"net/http"

	g "maragu.dev/gomponents"

	"eaglesounds.in/internal/components"
	"eaglesounds.in/internal/config"
	"eaglesounds.in/internal/contact"
	"eaglesounds.in/internal/services"
)

// PageHandler renders the site pages
type PageHandler struct {
	cfg          *config.Config
	imageService *services.ImageService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(cfg *config.Config, is *services.ImageService) *PageHandler {
	return &PageHandler{cfg: cfg, imageService: is}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, components.HomePage(
		h.cfg.Slides.Slides,
		h.cfg.Carousel.AutoPlayInterval.Milliseconds(),
		h.cfg.Carousel.TransitionDuration.Milliseconds(),
	))
}

// About handles GET /about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	render(w, components.AboutPage())
}

// Vendor handles GET /vendor
func (h *PageHandler) Vendor(w http.ResponseWriter, r *http.Request) {
	render(w, components.VendorPage())
}

// Contact handles GET /contact
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	render(w, components.ContactPage(contact.EventTypes))
}

// Admin handles GET /admin
func (h *PageHandler) Admin(w http.ResponseWriter, r *http.Request) {
	render(w, components.AdminPage())
}

// ImageManager handles GET /admin/image-manager?category=&q=
func (h *PageHandler) ImageManager(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	images := h.imageService.Filter(category, query)
	_, groups := h.imageService.ByCategory(images)

	render(w, components.ImageManagerPage(h.imageService.Categories(), groups, category, query))
}

func render(w http.ResponseWriter, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = page.Render(w)
}
