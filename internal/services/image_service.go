package services

import (
	"fmt"
	"sort"
	"strings"

	"eaglesounds.in/internal/models"
)

// ImageService handles the catalog of images the site expects
type ImageService struct {
	catalog *models.ImageCatalog
}

// NewImageService creates a new ImageService
func NewImageService(catalog *models.ImageCatalog) *ImageService {
	return &ImageService{catalog: catalog}
}

// GetAll returns all image requirements
func (s *ImageService) GetAll() []models.ImageRequirement {
	return s.catalog.Images
}

// GetByID returns a specific image requirement by ID
func (s *ImageService) GetByID(id string) (*models.ImageRequirement, error) {
	for i := range s.catalog.Images {
		if s.catalog.Images[i].ID == id {
			return &s.catalog.Images[i], nil
		}
	}
	return nil, fmt.Errorf("image not found: %s", id)
}

// Categories returns the distinct categories in catalog order
func (s *ImageService) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, img := range s.catalog.Images {
		if !seen[img.Category] {
			seen[img.Category] = true
			categories = append(categories, img.Category)
		}
	}
	return categories
}

// Filter returns the images in category (or every category when empty or
// "all") whose filename, purpose or path contains query
func (s *ImageService) Filter(category, query string) []models.ImageRequirement {
	query = strings.ToLower(strings.TrimSpace(query))
	all := category == "" || category == "all"

	matches := make([]models.ImageRequirement, 0, len(s.catalog.Images))
	for _, img := range s.catalog.Images {
		if !all && img.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(img.TargetFilename), query) &&
			!strings.Contains(strings.ToLower(img.Purpose), query) &&
			!strings.Contains(strings.ToLower(img.TargetPath), query) {
			continue
		}
		matches = append(matches, img)
	}
	return matches
}

// ByCategory groups the images by category, categories sorted by name
func (s *ImageService) ByCategory(images []models.ImageRequirement) ([]string, map[string][]models.ImageRequirement) {
	groups := make(map[string][]models.ImageRequirement)
	for _, img := range images {
		groups[img.Category] = append(groups[img.Category], img)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, groups
}
