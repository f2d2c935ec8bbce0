package handlers

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"eaglesounds.in/internal/assets"
	"eaglesounds.in/internal/config"
	"eaglesounds.in/internal/contact"
	"eaglesounds.in/internal/middleware"
	"eaglesounds.in/internal/services"
	"eaglesounds.in/web"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, store assets.Store, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize services
	slideService := services.NewSlideService(cfg.Slides)
	imageService := services.NewImageService(cfg.Images)
	uploadService := services.NewUploadService(store, log)
	contactService := services.NewContactService(contact.Options{
		SubmitDelay: cfg.Contact.SubmitDelay,
		ResetDelay:  cfg.Contact.ResetDelay,
	}, log)

	// Initialize handlers
	pageHandler := NewPageHandler(cfg, imageService)
	slideHandler := NewSlideHandler(slideService)
	imageHandler := NewImageHandler(imageService)
	uploadHandler := NewUploadHandler(uploadService, cfg.Upload.MaxBytes)
	contactHandler := NewContactHandler(contactService)
	liveHandler := NewLiveHandler(slideService, cfg, log)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/about", pageHandler.About)
	r.Get("/vendor", pageHandler.Vendor)
	r.Get("/contact", pageHandler.Contact)
	r.Get("/admin", pageHandler.Admin)
	r.Get("/admin/image-manager", pageHandler.ImageManager)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/slides", slideHandler.ListSlides)
		r.Get("/slides/{index}", slideHandler.GetSlide)

		r.Get("/effects/smoke/frames", slideHandler.SmokeFrames)
		r.Get("/effects/{type}", slideHandler.GetScene)

		r.Get("/images", imageHandler.ListImages)
		r.Get("/images/{id}", imageHandler.GetImage)

		r.With(rateLimit(cfg.Upload.RatePerMinute)).Post("/upload-image", uploadHandler.UploadImage)
		r.With(rateLimit(cfg.Contact.RatePerMinute)).Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Live effects
	r.Get("/ws/carousel", liveHandler.Carousel)
	r.Get("/ws/smoke", liveHandler.Smoke)

	r.Handle("/metrics", promhttp.Handler())

	// Static files
	fileServer := http.FileServer(http.FS(staticFiles(cfg.StaticDir)))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Everything else is an uploaded or bundled public asset
	r.Get("/*", NewAssetHandler(uploadService).Serve)

	return r
}

// staticFiles serves dir from disk when it exists, otherwise the embedded copy
func staticFiles(dir string) fs.FS {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir)
		}
	}
	return web.Static()
}

// rateLimit rejects requests beyond perMinute with 429; zero disables it
func rateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "60")
				respondError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zlog.Error().Err(err).Msg("encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// parseSeed reads the seed query parameter, defaulting to the current time
func parseSeed(r *http.Request) (uint64, error) {
	val := r.URL.Query().Get("seed")
	if val == "" {
		return uint64(time.Now().UnixNano()), nil
	}
	return strconv.ParseUint(val, 10, 64)
}

// clamp restricts a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
