package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zenatech-mv/site-backend/errs"
	"github.com/zenatech-mv/site-backend/models"
)

type brandStore interface {
	FindAll(includeInactive bool) ([]*models.Brand, error)
	FindByID(id uuid.UUID) (*models.Brand, error)
	Add(brand *models.Brand) error
	Update(brand *models.Brand) error
	Delete(id uuid.UUID) error
}

type brandHandler struct {
	responder Responder
	logger    zerolog.Logger
	brands    brandStore
}

func newBrandHandler(brands brandStore) brandHandler {
	logger := log.With().Str("handlerName", "brandHandler").Logger()

	return brandHandler{
		responder: NewResponder(logger),
		logger:    logger,
		brands:    brands,
	}
}

type BrandCollection struct {
	Brands []*models.Brand `json:"brands"`
	Total  int             `json:"total"`
}

// getActiveBrands serves the public brands strip in display order.
func (h brandHandler) getActiveBrands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands, err := h.brands.FindAll(false)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find brands", "brands", err))
			return
		}

		h.responder.WriteJSON(w, BrandCollection{Brands: brands, Total: len(brands)})
	}
}

func (h brandHandler) getAllBrands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands, err := h.brands.FindAll(true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find brands", "brands", err))
			return
		}

		brands = FilterBrands(brands,
			r.URL.Query().Get("search"),
			r.URL.Query().Get("category"),
			r.URL.Query().Get("status"),
		)

		h.responder.WriteJSON(w, BrandCollection{Brands: brands, Total: len(brands)})
	}
}

func (h brandHandler) createBrand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var brand models.Brand
		if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode brand request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if brand.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		if err := h.brands.Add(&brand); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create brand", "brand", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, brand)
	}
}

func (h brandHandler) updateBrand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, apiErr := parseIDParam(r, "brandID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existingBrand, err := h.brands.FindByID(brandID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find brand", "brand", err))
			return
		}
		if existingBrand == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("brand not found"))
			return
		}

		// Decode over the stored row so unsent fields keep their values
		brand := *existingBrand
		if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode brand request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		brand.ID = brandID
		brand.CreatedAt = existingBrand.CreatedAt

		if err := h.brands.Update(&brand); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update brand", "brand", err))
			return
		}

		h.responder.WriteJSON(w, brand)
	}
}

func (h brandHandler) deleteBrand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, apiErr := parseIDParam(r, "brandID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		brand, err := h.brands.FindByID(brandID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find brand", "brand", err))
			return
		}
		if brand == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("brand not found"))
			return
		}

		if err := h.brands.Delete(brandID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete brand", "brand", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "brand deleted successfully",
		})
	}
}
