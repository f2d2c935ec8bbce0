package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"eaglesounds.in/internal/assets"
	"eaglesounds.in/internal/metrics"
)

// ErrInvalidTarget is returned when the upload target cannot be stored
var ErrInvalidTarget = errors.New("invalid upload target")

// UploadService writes admin image uploads to the configured store
type UploadService struct {
	store assets.Store
	log   zerolog.Logger
}

// NewUploadService creates a new UploadService
func NewUploadService(store assets.Store, log zerolog.Logger) *UploadService {
	return &UploadService{
		store: store,
		log:   log.With().Str("component", "upload").Str("backend", store.Name()).Logger(),
	}
}

// Upload stores r at target and returns the public path it is served from.
// An existing file at the same path is replaced.
func (s *UploadService) Upload(ctx context.Context, target assets.Target, r io.Reader, size int64, contentType string) (string, error) {
	key, err := target.Key()
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(s.store.Name(), metrics.ResultInvalid).Inc()
		return "", fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	if err := s.store.Put(ctx, key, r, size, contentType); err != nil {
		metrics.UploadsTotal.WithLabelValues(s.store.Name(), metrics.ResultError).Inc()
		s.log.Error().Err(err).Str("key", key).Msg("upload failed")
		return "", err
	}

	metrics.UploadsTotal.WithLabelValues(s.store.Name(), metrics.ResultOK).Inc()
	if size > 0 {
		metrics.UploadBytes.Add(float64(size))
	}
	s.log.Info().Str("key", key).Int64("size", size).Msg("image uploaded")

	return "/" + key, nil
}

// Open reads a stored asset back
func (s *UploadService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.store.Get(ctx, key)
}
