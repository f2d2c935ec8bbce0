package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"eaglesounds.in/internal/assets"
	"eaglesounds.in/internal/models"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nested keys: EAGLE_UPLOAD__MAX_BYTES sets upload.max_bytes.
const EnvPrefix = "EAGLE_"

// Config holds all application configuration
type Config struct {
	ServerAddr     string         `koanf:"server_addr"`
	DataPath       string         `koanf:"data_path"`
	PublicDir      string         `koanf:"public_dir"`
	StaticDir      string         `koanf:"static_dir"`
	LogLevel       string         `koanf:"log_level"`
	LogFormat      string         `koanf:"log_format"`
	AllowedOrigins []string       `koanf:"allowed_origins"`
	Upload         UploadConfig   `koanf:"upload"`
	Carousel       CarouselConfig `koanf:"carousel"`
	Contact        ContactConfig  `koanf:"contact"`
	Smoke          SmokeConfig    `koanf:"smoke"`

	Slides *models.SlideList    `koanf:"-"`
	Images *models.ImageCatalog `koanf:"-"`
}

// UploadConfig holds image upload settings
type UploadConfig struct {
	Backend       string          `koanf:"backend"`
	MaxBytes      int64           `koanf:"max_bytes"`
	RatePerMinute int             `koanf:"rate_per_minute"`
	S3            assets.S3Config `koanf:"s3"`
}

// CarouselConfig holds hero carousel timings
type CarouselConfig struct {
	AutoPlayInterval   time.Duration `koanf:"autoplay_interval"`
	TransitionDuration time.Duration `koanf:"transition_duration"`
}

// ContactConfig holds the simulated contact form delays
type ContactConfig struct {
	SubmitDelay   time.Duration `koanf:"submit_delay"`
	ResetDelay    time.Duration `koanf:"reset_delay"`
	RatePerMinute int           `koanf:"rate_per_minute"`
}

// SmokeConfig holds live smoke stream settings
type SmokeConfig struct {
	FrameRate int `koanf:"frame_rate"`
	MaxFrames int `koanf:"max_frames"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		ServerAddr:     ":8080",
		DataPath:       "data",
		PublicDir:      "public",
		StaticDir:      "static",
		LogLevel:       "info",
		LogFormat:      "console",
		AllowedOrigins: []string{"*"},
		Upload: UploadConfig{
			Backend:       "local",
			MaxBytes:      10 << 20,
			RatePerMinute: 30,
		},
		Carousel: CarouselConfig{
			AutoPlayInterval:   7 * time.Second,
			TransitionDuration: 500 * time.Millisecond,
		},
		Contact: ContactConfig{
			SubmitDelay:   time.Second,
			ResetDelay:    5 * time.Second,
			RatePerMinute: 10,
		},
		Smoke: SmokeConfig{
			FrameRate: 30,
			MaxFrames: 600,
		},
	}
}

// Load reads .env, the optional YAML file at path and EAGLE_* overrides, then
// the site data files under DataPath
func Load(path string) (*Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slides, err := loadSlides(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	images, err := loadImages(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	cfg.Slides = slides
	cfg.Images = images

	return cfg, nil
}

// envKey maps EAGLE_UPLOAD__MAX_BYTES to upload.max_bytes
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return errors.New("server_addr is required")
	}
	switch c.Upload.Backend {
	case "local":
		if c.PublicDir == "" {
			return errors.New("public_dir is required for the local upload backend")
		}
	case "s3":
		if c.Upload.S3.Bucket == "" {
			return errors.New("upload.s3.bucket is required for the s3 upload backend")
		}
	default:
		return fmt.Errorf("invalid upload.backend %q: must be local or s3", c.Upload.Backend)
	}
	if c.Upload.MaxBytes <= 0 {
		return errors.New("upload.max_bytes must be positive")
	}
	if c.Carousel.AutoPlayInterval <= 0 {
		return errors.New("carousel.autoplay_interval must be positive")
	}
	if c.Smoke.FrameRate <= 0 || c.Smoke.FrameRate > 120 {
		return fmt.Errorf("smoke.frame_rate %d out of range 1-120", c.Smoke.FrameRate)
	}
	return nil
}

// loadSlides reads slides.json, falling back to the built-in slides
func loadSlides(dataPath string) (*models.SlideList, error) {
	var slides models.SlideList
	found, err := readJSON(filepath.Join(dataPath, "slides.json"), &slides)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.DefaultSlides(), nil
	}
	if len(slides.Slides) == 0 {
		return nil, errors.New("slides.json contains no slides")
	}
	for i := range slides.Slides {
		slides.Slides[i].Index = i
		if _, err := models.ParseEffectType(string(slides.Slides[i].Effect)); err != nil {
			return nil, fmt.Errorf("slides.json slide %d: %w", i, err)
		}
	}
	return &slides, nil
}

// loadImages reads images.json, falling back to the built-in catalog
func loadImages(dataPath string) (*models.ImageCatalog, error) {
	var images models.ImageCatalog
	found, err := readJSON(filepath.Join(dataPath, "images.json"), &images)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.DefaultImageCatalog(), nil
	}
	return &images, nil
}

// readJSON decodes a JSON file, reporting false if it does not exist
func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
