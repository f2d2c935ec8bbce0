package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"eaglesounds.in/internal/contact"
	"eaglesounds.in/internal/models"
	"eaglesounds.in/internal/services"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// Submit handles POST /api/contact with a JSON or form-encoded body
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactForm

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req = models.ContactForm{
			Name:      r.PostForm.Get("name"),
			Email:     r.PostForm.Get("email"),
			Phone:     r.PostForm.Get("phone"),
			EventType: r.PostForm.Get("eventType"),
			EventDate: r.PostForm.Get("eventDate"),
			Message:   r.PostForm.Get("message"),
		}
	}

	if missing := contact.Missing(req); len(missing) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Missing required fields",
			"missing": missing,
		})
		return
	}

	status, err := h.contactService.Submit(r.Context(), req)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, status)
	case errors.Is(err, contact.ErrEventType):
		respondError(w, http.StatusBadRequest, "Invalid event type")
	case r.Context().Err() != nil:
		// client went away during the simulated delay
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
