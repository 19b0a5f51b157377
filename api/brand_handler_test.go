package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenatech-mv/site-backend/models"
)

func newBrandTestRouter() (*chi.Mux, *memBrandStore) {
	store := newMemBrandStore()
	handler := newBrandHandler(store)

	r := chi.NewRouter()
	r.Get("/brands", handler.getActiveBrands())
	r.Get("/admin/brands", handler.getAllBrands())
	r.Post("/admin/brands", handler.createBrand())
	r.Put("/admin/brands/{brandID}", handler.updateBrand())
	r.Delete("/admin/brands/{brandID}", handler.deleteBrand())
	return r, store
}

func seedBrand(t *testing.T, store *memBrandStore, name string, active bool, displayOrder int) *models.Brand {
	t.Helper()
	brand := &models.Brand{
		ID:           uuid.New(),
		Name:         name,
		Category:     models.CategoryCCTV,
		IsActive:     active,
		DisplayOrder: displayOrder,
	}
	require.NoError(t, store.Add(brand))
	return brand
}

func TestPublicBrandsExcludeInactiveAndKeepOrder(t *testing.T) {
	router, store := newBrandTestRouter()
	seedBrand(t, store, "Cisco", true, 2)
	seedBrand(t, store, "Hikvision", true, 1)
	seedBrand(t, store, "Legacy Vendor", false, 0)

	rec := doRequest(t, router, http.MethodGet, "/brands", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BrandCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Hikvision", resp.Brands[0].Name)
	assert.Equal(t, "Cisco", resp.Brands[1].Name)
}

func TestBrandCRUD(t *testing.T) {
	router, store := newBrandTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/admin/brands",
		`{"name": "Ubiquiti", "category": "Networking", "is_active": true, "display_order": 5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Brand
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEqual(t, uuid.Nil, created.ID)

	// Toggle with a single-field body; the rest of the row must survive
	rec = doRequest(t, router, http.MethodPut, "/admin/brands/"+created.ID.String(),
		`{"is_active": false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := store.FindByID(created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	assert.Equal(t, "Ubiquiti", stored.Name)
	assert.Equal(t, "Networking", stored.Category)
	assert.Equal(t, 5, stored.DisplayOrder)

	rec = doRequest(t, router, http.MethodDelete, "/admin/brands/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/admin/brands/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBrandRequiresName(t *testing.T) {
	router, _ := newBrandTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/admin/brands", `{"category": "Networking"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminBrandFilters(t *testing.T) {
	router, store := newBrandTestRouter()
	seedBrand(t, store, "Hikvision", true, 0)
	seedBrand(t, store, "Cisco", false, 1)

	rec := doRequest(t, router, http.MethodGet, "/admin/brands?status=active", "")
	var resp BrandCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Hikvision", resp.Brands[0].Name)
}
