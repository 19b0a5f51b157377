package api

import (
	"sort"

	"github.com/google/uuid"

	"github.com/zenatech-mv/site-backend/models"
	"github.com/zenatech-mv/site-backend/services"
)

// In-memory store implementations backing the handler tests. They mirror the
// repo contracts: FindByID returns nil for a missing row, list methods return
// rows in display order.

type memProjectStore struct {
	projects map[uuid.UUID]*models.Project
}

func newMemProjectStore() *memProjectStore {
	return &memProjectStore{projects: map[uuid.UUID]*models.Project{}}
}

func (s *memProjectStore) FindAll(includeUnpublished bool) ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range s.projects {
		if !includeUnpublished && !p.IsPublished {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (s *memProjectStore) FindByID(id uuid.UUID, includeUnpublished bool) (*models.Project, error) {
	p := s.projects[id]
	if p == nil || (!includeUnpublished && !p.IsPublished) {
		return nil, nil
	}
	return p, nil
}

func (s *memProjectStore) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	s.projects[project.ID] = project
	return nil
}

func (s *memProjectStore) Update(project *models.Project) error {
	s.projects[project.ID] = project
	return nil
}

func (s *memProjectStore) Delete(id uuid.UUID) error {
	delete(s.projects, id)
	return nil
}

type memProjectImageStore struct {
	images map[uuid.UUID]*models.ProjectImage
}

func newMemProjectImageStore() *memProjectImageStore {
	return &memProjectImageStore{images: map[uuid.UUID]*models.ProjectImage{}}
}

func (s *memProjectImageStore) FindByID(id uuid.UUID) (*models.ProjectImage, error) {
	return s.images[id], nil
}

func (s *memProjectImageStore) Add(image *models.ProjectImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	s.images[image.ID] = image
	return nil
}

func (s *memProjectImageStore) Delete(id uuid.UUID) error {
	delete(s.images, id)
	return nil
}

type memGalleryStore struct {
	images map[uuid.UUID]*models.GalleryImage
}

func newMemGalleryStore() *memGalleryStore {
	return &memGalleryStore{images: map[uuid.UUID]*models.GalleryImage{}}
}

func (s *memGalleryStore) FindAll(includeInactive bool) ([]*models.GalleryImage, error) {
	var out []*models.GalleryImage
	for _, img := range s.images {
		if !includeInactive && !img.IsActive {
			continue
		}
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (s *memGalleryStore) FindByID(id uuid.UUID) (*models.GalleryImage, error) {
	return s.images[id], nil
}

func (s *memGalleryStore) Add(image *models.GalleryImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	s.images[image.ID] = image
	return nil
}

func (s *memGalleryStore) Update(image *models.GalleryImage) error {
	s.images[image.ID] = image
	return nil
}

func (s *memGalleryStore) Delete(id uuid.UUID) error {
	delete(s.images, id)
	return nil
}

type memBrandStore struct {
	brands map[uuid.UUID]*models.Brand
}

func newMemBrandStore() *memBrandStore {
	return &memBrandStore{brands: map[uuid.UUID]*models.Brand{}}
}

func (s *memBrandStore) FindAll(includeInactive bool) ([]*models.Brand, error) {
	var out []*models.Brand
	for _, b := range s.brands {
		if !includeInactive && !b.IsActive {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (s *memBrandStore) FindByID(id uuid.UUID) (*models.Brand, error) {
	return s.brands[id], nil
}

func (s *memBrandStore) Add(brand *models.Brand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	s.brands[brand.ID] = brand
	return nil
}

func (s *memBrandStore) Update(brand *models.Brand) error {
	s.brands[brand.ID] = brand
	return nil
}

func (s *memBrandStore) Delete(id uuid.UUID) error {
	delete(s.brands, id)
	return nil
}

type fakeNotifier struct {
	err        error
	lastKind   services.NotificationKind
	lastFields services.NotificationFields
	calls      int
}

func (f *fakeNotifier) Send(kind services.NotificationKind, fields services.NotificationFields) error {
	f.calls++
	f.lastKind = kind
	f.lastFields = fields
	return f.err
}

// fakeSessionResolver resolves fixed tokens to fixed users.
type fakeSessionResolver struct {
	users map[string]*models.AdminUser
}

func (f *fakeSessionResolver) CurrentUser(token string) *models.AdminUser {
	return f.users[token]
}
