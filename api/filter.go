package api

import (
	"strings"

	"github.com/zenatech-mv/site-backend/models"
)

// List-view filters used by the admin screens. Filtering happens in memory
// over the fetched set, mirroring how the admin UI filters the table it
// already loaded. An empty filter value means "no constraint".

// FilterProjects applies search, category, and status filters. Search is a
// case-insensitive substring match over title, client, and location. Status
// accepts "published" or "draft".
func FilterProjects(projects []*models.Project, search, category, status string) []*models.Project {
	filtered := make([]*models.Project, 0, len(projects))
	needle := strings.ToLower(search)

	for _, p := range projects {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Client), needle) &&
			!strings.Contains(strings.ToLower(p.Location), needle) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		switch status {
		case "published":
			if !p.IsPublished {
				continue
			}
		case "draft":
			if p.IsPublished {
				continue
			}
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// FilterGalleryImages applies search, category, and status filters. Search is
// a case-insensitive substring match over title and alt text. Status accepts
// "active" or "inactive".
func FilterGalleryImages(images []*models.GalleryImage, search, category, status string) []*models.GalleryImage {
	filtered := make([]*models.GalleryImage, 0, len(images))
	needle := strings.ToLower(search)

	for _, img := range images {
		if needle != "" &&
			!containsFold(img.Title, needle) &&
			!containsFold(img.AltText, needle) {
			continue
		}
		if category != "" && (img.Category == nil || *img.Category != category) {
			continue
		}
		switch status {
		case "active":
			if !img.IsActive {
				continue
			}
		case "inactive":
			if img.IsActive {
				continue
			}
		}
		filtered = append(filtered, img)
	}
	return filtered
}

// FilterBrands applies search, category, and status filters. Search is a
// case-insensitive substring match over the brand name.
func FilterBrands(brands []*models.Brand, search, category, status string) []*models.Brand {
	filtered := make([]*models.Brand, 0, len(brands))
	needle := strings.ToLower(search)

	for _, b := range brands {
		if needle != "" && !strings.Contains(strings.ToLower(b.Name), needle) {
			continue
		}
		if category != "" && b.Category != category {
			continue
		}
		switch status {
		case "active":
			if !b.IsActive {
				continue
			}
		case "inactive":
			if b.IsActive {
				continue
			}
		}
		filtered = append(filtered, b)
	}
	return filtered
}

func containsFold(s *string, lowerNeedle string) bool {
	if s == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*s), lowerNeedle)
}
