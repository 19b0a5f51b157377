package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenatech-mv/site-backend/models"
)

func strPtr(s string) *string { return &s }

func testProjects() []*models.Project {
	return []*models.Project{
		{Title: "Resort CCTV Rollout", Client: "Reef Resorts", Location: "Baa Atoll", Category: models.CategoryCCTV, IsPublished: true},
		{Title: "Office Network Upgrade", Client: "Atoll Logistics", Location: "Male", Category: models.CategoryNetworking, IsPublished: true},
		{Title: "POS Deployment", Client: "Island Mart", Location: "Hulhumale", Category: models.CategoryIT, IsPublished: false},
	}
}

func TestFilterProjectsSearch(t *testing.T) {
	// Case-insensitive, matches title, client, or location
	got := FilterProjects(testProjects(), "resort", "", "")
	assert.Len(t, got, 1)
	assert.Equal(t, "Resort CCTV Rollout", got[0].Title)

	got = FilterProjects(testProjects(), "MALE", "", "")
	assert.Len(t, got, 2)

	got = FilterProjects(testProjects(), "island mart", "", "")
	assert.Len(t, got, 1)
}

func TestFilterProjectsCategoryAndStatus(t *testing.T) {
	got := FilterProjects(testProjects(), "", models.CategoryCCTV, "")
	assert.Len(t, got, 1)

	got = FilterProjects(testProjects(), "", "", "published")
	assert.Len(t, got, 2)

	got = FilterProjects(testProjects(), "", "", "draft")
	assert.Len(t, got, 1)
	assert.Equal(t, "POS Deployment", got[0].Title)
}

func TestFilterProjectsEmptyFiltersPassEverything(t *testing.T) {
	got := FilterProjects(testProjects(), "", "", "")
	assert.Len(t, got, 3)
}

func TestFilterGalleryImages(t *testing.T) {
	images := []*models.GalleryImage{
		{Title: strPtr("Resort lobby install"), Category: strPtr(models.CategoryCCTV), IsActive: true},
		{AltText: strPtr("Server room racks"), Category: strPtr(models.CategoryIT), IsActive: true},
		{Title: strPtr("Old photo"), Category: strPtr(models.CategoryGeneral), IsActive: false},
	}

	got := FilterGalleryImages(images, "resort", "", "")
	assert.Len(t, got, 1)

	// Search also covers alt text
	got = FilterGalleryImages(images, "racks", "", "")
	assert.Len(t, got, 1)

	got = FilterGalleryImages(images, "", models.CategoryCCTV, "")
	assert.Len(t, got, 1)

	got = FilterGalleryImages(images, "", "", "inactive")
	assert.Len(t, got, 1)

	// Nil title and alt text never match a search
	got = FilterGalleryImages([]*models.GalleryImage{{IsActive: true}}, "resort", "", "")
	assert.Empty(t, got)
}

func TestFilterBrands(t *testing.T) {
	brands := []*models.Brand{
		{Name: "Hikvision", Category: models.CategoryCCTV, IsActive: true},
		{Name: "Cisco", Category: models.CategoryNetworking, IsActive: true},
		{Name: "Legacy Vendor", Category: models.CategoryIT, IsActive: false},
	}

	got := FilterBrands(brands, "hik", "", "")
	assert.Len(t, got, 1)

	got = FilterBrands(brands, "", models.CategoryNetworking, "")
	assert.Len(t, got, 1)

	got = FilterBrands(brands, "", "", "active")
	assert.Len(t, got, 2)

	got = FilterBrands(brands, "", "", "inactive")
	assert.Len(t, got, 1)
}
