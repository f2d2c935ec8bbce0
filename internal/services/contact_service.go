package services

import (
	"context"

	"github.com/rs/zerolog"

	"eaglesounds.in/internal/contact"
	"eaglesounds.in/internal/metrics"
	"eaglesounds.in/internal/models"
)

// ContactService handles contact form submissions
type ContactService struct {
	opts contact.Options
	log  zerolog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(opts contact.Options, log zerolog.Logger) *ContactService {
	return &ContactService{
		opts: opts,
		log:  log.With().Str("component", "contact").Logger(),
	}
}

// Submit runs one simulated submission of the given values
func (s *ContactService) Submit(ctx context.Context, values models.ContactForm) (models.FormStatus, error) {
	form := contact.NewForm(s.opts)
	defer form.Close()

	form.Fill(values)
	status, err := form.Submit(ctx)
	if err != nil {
		return models.FormStatus{}, err
	}

	eventType := values.EventType
	if eventType == "" {
		eventType = "unspecified"
	}
	metrics.ContactSubmissions.WithLabelValues(eventType).Inc()
	s.log.Info().
		Str("reference", status.Reference).
		Str("event_type", eventType).
		Msg("contact form submitted")

	return status, nil
}
