package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"eaglesounds.in/internal/models"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestHomePage(t *testing.T) {
	slides := models.DefaultSlides().Slides
	html := render(t, HomePage(slides, 7000, 500))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Equal(t, len(slides)-1, strings.Count(html, `class="slide"`))
	assert.Equal(t, 1, strings.Count(html, `class="slide active"`))
	assert.Contains(t, html, `data-autoplay-ms="7000"`)
	assert.Contains(t, html, `data-ws="/ws/smoke"`)
	assert.Contains(t, html, `data-scene="/api/effects/confetti"`)
	assert.Contains(t, html, slides[0].Title)
}

func TestNavbarMarksCurrentPage(t *testing.T) {
	html := render(t, Navbar("/vendor"))
	assert.Contains(t, html, `<a href="/vendor" class="active">Services</a>`)
	assert.Equal(t, 1, strings.Count(html, "active"))
}

func TestContactForm(t *testing.T) {
	html := render(t, ContactForm([]string{"wedding", "other"}))

	for _, name := range []string{"name", "email", "phone", "eventType", "eventDate", "message"} {
		assert.Contains(t, html, `name="`+name+`"`)
	}
	assert.Contains(t, html, `<option value="wedding">Wedding</option>`)
}

func TestImageManagerPage(t *testing.T) {
	images := []models.ImageRequirement{
		{ID: "og", Category: "Social", TargetFilename: "og-image.jpg", TargetPath: "/social/", Purpose: "Share card"},
		{ID: "logo", Category: "Branding", TargetFilename: "eagle-logo.png", TargetPath: "/", Purpose: "Logo"},
	}
	groups := map[string][]models.ImageRequirement{
		"Social":   images[:1],
		"Branding": images[1:],
	}

	html := render(t, ImageManagerPage([]string{"Branding", "Social"}, groups, "", ""))
	assert.Contains(t, html, `action="/api/upload-image"`)
	assert.Contains(t, html, `value="og-image.jpg"`)
	assert.Contains(t, html, `src="/social/og-image.jpg"`)
	assert.Contains(t, html, `src="/eagle-logo.png"`)
	assert.NotContains(t, html, "No images match")

	empty := render(t, ImageManagerPage([]string{"Social"}, nil, "Social", "zzz"))
	assert.Contains(t, empty, "No images match")
	assert.Contains(t, empty, `value="zzz"`)
}
