package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eaglesounds.in/internal/models"
)

// inTempDir runs the test from an empty directory so no .env or data files leak in
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load("missing.yml")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "local", cfg.Upload.Backend)
	assert.Equal(t, 7*time.Second, cfg.Carousel.AutoPlayInterval)
	assert.Equal(t, models.DefaultSlides(), cfg.Slides)
	assert.Equal(t, models.DefaultImageCatalog(), cfg.Images)
}

func TestLoadYAMLAndEnv(t *testing.T) {
	dir := inTempDir(t)

	yml := `
server_addr: ":9090"
public_dir: assets
carousel:
  autoplay_interval: 3s
upload:
  max_bytes: 1024
`
	path := filepath.Join(dir, "eaglesounds.yml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	t.Setenv("EAGLE_SERVER_ADDR", ":7070")
	t.Setenv("EAGLE_CONTACT__SUBMIT_DELAY", "250ms")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ServerAddr, "env wins over file")
	assert.Equal(t, "assets", cfg.PublicDir)
	assert.Equal(t, 3*time.Second, cfg.Carousel.AutoPlayInterval)
	assert.Equal(t, int64(1024), cfg.Upload.MaxBytes)
	assert.Equal(t, 250*time.Millisecond, cfg.Contact.SubmitDelay)
	assert.Equal(t, 5*time.Second, cfg.Contact.ResetDelay, "defaults kept")
}

func TestLoadDotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EAGLE_LOG_LEVEL=debug\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("EAGLE_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadSlidesFile(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0755))

	slides := `{"slides":[{"title":"One","effect":"smoke"},{"title":"Two"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "slides.json"), []byte(slides), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Len(t, cfg.Slides.Slides, 2)
	assert.Equal(t, 1, cfg.Slides.Slides[1].Index)
	assert.Equal(t, models.EffectSmoke, cfg.Slides.Slides[0].Effect)
}

func TestLoadRejectsBadSlides(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "slides.json"), []byte(`{"slides":[]}`), 0644))
	_, err := Load("")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "slides.json"), []byte(`{"slides":[{"effect":"lasers"}]}`), 0644))
	_, err = Load("")
	assert.ErrorContains(t, err, "unknown effect type")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Upload.Backend = "ftp"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Upload.Backend = "s3"
	assert.ErrorContains(t, cfg.Validate(), "bucket")

	cfg.Upload.S3.Bucket = "eagle-assets"
	assert.NoError(t, cfg.Validate())

	cfg = Default()
	cfg.Smoke.FrameRate = 0
	assert.Error(t, cfg.Validate())
}
