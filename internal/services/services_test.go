package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eaglesounds.in/internal/assets"
	"eaglesounds.in/internal/contact"
	"eaglesounds.in/internal/models"
)

func TestImageServiceFilter(t *testing.T) {
	svc := NewImageService(models.DefaultImageCatalog())

	all := svc.Filter("", "")
	assert.Len(t, all, len(svc.GetAll()))
	assert.Equal(t, all, svc.Filter("all", "  "))

	categories := svc.Categories()
	require.NotEmpty(t, categories)
	first := svc.Filter(categories[0], "")
	require.NotEmpty(t, first)
	for _, img := range first {
		assert.Equal(t, categories[0], img.Category)
	}

	assert.Empty(t, svc.Filter("", "no-such-image-anywhere"))
}

func TestImageServiceGetByID(t *testing.T) {
	svc := NewImageService(models.DefaultImageCatalog())
	want := svc.GetAll()[0]

	got, err := svc.GetByID(want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	_, err = svc.GetByID("missing")
	assert.Error(t, err)
}

func TestImageServiceByCategory(t *testing.T) {
	svc := NewImageService(models.DefaultImageCatalog())
	names, groups := svc.ByCategory(svc.GetAll())

	total := 0
	for _, name := range names {
		total += len(groups[name])
	}
	assert.Equal(t, len(svc.GetAll()), total)
	assert.IsNonDecreasing(t, names)
}

func TestSlideServiceSceneCache(t *testing.T) {
	svc := NewSlideService(models.DefaultSlides())

	a, err := svc.Scene(models.EffectConfetti, 42)
	require.NoError(t, err)
	b, err := svc.Scene(models.EffectConfetti, 42)
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := svc.Scene(models.EffectConfetti, 43)
	require.NoError(t, err)
	assert.NotSame(t, a, c)

	_, err = svc.Scene(models.EffectNone, 1)
	assert.Error(t, err)
}

func TestSlideServiceGetByIndex(t *testing.T) {
	svc := NewSlideService(models.DefaultSlides())

	s, err := svc.GetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Index)

	_, err = svc.GetByIndex(len(svc.GetAll()))
	assert.Error(t, err)
	_, err = svc.GetByIndex(-1)
	assert.Error(t, err)
}

func TestSlideServiceSmokeFrames(t *testing.T) {
	svc := NewSlideService(models.DefaultSlides())
	v := models.Viewport{Width: 800, Height: 600}

	frames := svc.SmokeFrames(v, 10, 7)
	require.Len(t, frames, 10)
	assert.Equal(t, uint64(1), frames[0].Seq)
	assert.Equal(t, uint64(10), frames[9].Seq)
	assert.Equal(t, 800, frames[0].Width)

	assert.Equal(t, frames, svc.SmokeFrames(v, 10, 7), "same seed gives the same frames")
}

type failingStore struct{}

func (failingStore) Put(context.Context, string, io.Reader, int64, string) error {
	return errors.New("disk full")
}

func (failingStore) Get(context.Context, string) (io.ReadCloser, error) {
	return nil, assets.ErrNotFound
}

func (failingStore) Name() string { return "failing" }

func TestUploadService(t *testing.T) {
	store, err := assets.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	svc := NewUploadService(store, zerolog.Nop())
	ctx := context.Background()

	path, err := svc.Upload(ctx, assets.Target{Path: "/social/", Filename: "og.jpg"}, strings.NewReader("jpeg"), 4, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/social/og.jpg", path)

	rc, err := svc.Open(ctx, "social/og.jpg")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))

	_, err = svc.Upload(ctx, assets.Target{Path: "/../", Filename: "x.jpg"}, strings.NewReader("x"), 1, "")
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.ErrorIs(t, err, assets.ErrOutsideRoot)
}

func TestUploadServiceStoreError(t *testing.T) {
	svc := NewUploadService(failingStore{}, zerolog.Nop())

	_, err := svc.Upload(context.Background(), assets.Target{Path: "/", Filename: "a.jpg"}, strings.NewReader("x"), 1, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTarget)
	assert.Contains(t, err.Error(), "disk full")
}

func TestContactServiceSubmit(t *testing.T) {
	svc := NewContactService(contact.Options{SubmitDelay: time.Millisecond, ResetDelay: time.Second}, zerolog.Nop())

	status, err := svc.Submit(context.Background(), models.ContactForm{
		Name:    "Dana",
		Email:   "dana@example.com",
		Phone:   "555-0100",
		Message: "Do you do outdoor weddings?",
	})
	require.NoError(t, err)
	assert.True(t, status.Success)
	assert.Equal(t, contact.SuccessMessage, status.Message)
	assert.NotEmpty(t, status.Reference)

	_, err = svc.Submit(context.Background(), models.ContactForm{Name: "Dana"})
	assert.ErrorIs(t, err, contact.ErrMissingFields)
}
