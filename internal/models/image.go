package models

// ImageRequirement represents an image asset the site expects to find
type ImageRequirement struct {
	ID             string `json:"id"`
	Category       string `json:"category"`
	TargetFilename string `json:"target_filename"`
	TargetPath     string `json:"target_path"`
	Dimensions     string `json:"dimensions"`
	Purpose        string `json:"purpose"`
	AspectRatio    string `json:"aspect_ratio,omitempty"`
}

// ImageCatalog wraps the array of image requirements
type ImageCatalog struct {
	Images []ImageRequirement `json:"images"`
}

// UploadResult is returned to the admin image manager
type UploadResult struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath,omitempty"`
}

// DefaultImageCatalog returns the images the admin image manager lists
func DefaultImageCatalog() *ImageCatalog {
	img := func(category, id, filename, path, dims, purpose string) ImageRequirement {
		return ImageRequirement{
			ID:             id,
			Category:       category,
			TargetFilename: filename,
			TargetPath:     path,
			Dimensions:     dims,
			Purpose:        purpose,
		}
	}

	const (
		hero    = "1920x1080px (16:9)"
		card    = "600x400px (3:2)"
		square  = "400x400px (1:1)"
		feature = "800x600px (4:3)"
		social  = "64x64px (1:1)"
		banner  = "1200x628px (1.91:1)"
	)

	return &ImageCatalog{Images: []ImageRequirement{
		img("Logo", "logo", "logo.png", "/", "Transparent background recommended", "Site Logo"),
		img("Logo", "favicon", "favicon.ico", "/", ".ico format", "Favicon"),

		img("Hero Images", "hero-dj", "hero-dj.jpg", "/", hero, "Hero Carousel - DJ"),
		img("Hero Images", "hero-photo", "hero-photo.jpg", "/", hero, "Hero Carousel - Photography"),
		img("Hero Images", "hero-smoke", "hero-smoke.jpg", "/", hero, "Hero Carousel - Smoke Effects"),
		img("Hero Images", "hero-complete", "hero-complete.jpg", "/", hero, "Hero Carousel - Complete Solutions"),

		img("Service Images", "dj-service-home", "dj-service.jpg", "/", card, "Homepage DJ Service Card"),
		img("Service Images", "lighting-service-home", "lighting-service.jpg", "/", card, "Homepage Lighting Service Card"),
		img("Service Images", "photo-service-home", "photo-service.jpg", "/", card, "Homepage Photography Service Card"),
		img("Service Images", "smoke-service-home", "smoke-service.jpg", "/", card, "Homepage Smoke Service Card"),

		img("Page Specific Images", "why-choose-us", "why-choose-us.jpg", "/", feature, "Why Choose Us section image"),
		img("Page Specific Images", "about-hero", "about-hero.jpg", "/", hero, "About Page Hero Background"),
		img("Page Specific Images", "contact-hero", "contact-hero.jpg", "/", hero, "Contact Page Hero Background"),
		img("Page Specific Images", "vendor-bg", "vendor-bg.jpg", "/", hero, "Vendor Page Hero Background"),
		img("Page Specific Images", "about-image", "about-image.jpg", "/", feature, "Feature image for About page"),
		img("Page Specific Images", "founder", "founder.jpg", "/", square, "Founder Photo (About Page)"),

		img("Team Images", "team1", "team1.jpg", "/", square, "Team Member 1 (Founder/CEO)"),

		img("Testimonial Images", "testimonial1", "testimonial1.jpg", "/", "200x200px (1:1)", "Testimonial Client 1"),
		img("Testimonial Images", "testimonial2", "testimonial2.jpg", "/", "200x200px (1:1)", "Testimonial Client 2"),
		img("Testimonial Images", "testimonial3", "testimonial3.jpg", "/", "200x200px (1:1)", "Testimonial Client 3"),

		img("Smoke Machine Services", "smoke-haze", "smoke-haze.jpg", "/", card, "Haze Machine (Vendor)"),
		img("Smoke Machine Services", "smoke-co2", "smoke-co2.jpg", "/", card, "CO2 Jet (Vendor)"),
		img("Smoke Machine Services", "smoke-custom", "smoke-custom.jpg", "/", card, "Custom Smoke Package (Vendor)"),

		img("Social Media Assets", "social-instagram", "instagram.png", "/social/", social, "Instagram Icon"),
		img("Social Media Assets", "social-youtube", "youtube.png", "/social/", social, "YouTube Icon"),
		img("Social Media Assets", "social-facebook", "facebook.png", "/social/", social, "Facebook Icon"),
		img("Social Media Assets", "social-whatsapp", "whatsapp.png", "/social/", social, "WhatsApp Icon"),
		img("Social Media Assets", "social-banner", "social-banner.jpg", "/", banner, "Social Sharing Banner (og-image)"),
		img("Social Media Assets", "twitter-image", "twitter-image.jpg", "/", banner, "Twitter Card Image"),
	}}
}
