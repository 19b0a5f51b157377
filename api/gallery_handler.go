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

type galleryImageStore interface {
	FindAll(includeInactive bool) ([]*models.GalleryImage, error)
	FindByID(id uuid.UUID) (*models.GalleryImage, error)
	Add(image *models.GalleryImage) error
	Update(image *models.GalleryImage) error
	Delete(id uuid.UUID) error
}

type galleryHandler struct {
	responder Responder
	logger    zerolog.Logger
	images    galleryImageStore
}

func newGalleryHandler(images galleryImageStore) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		images:    images,
	}
}

type GalleryCollection struct {
	Images []*models.GalleryImage `json:"images"`
	Total  int                    `json:"total"`
}

// getActiveImages serves the public gallery: active rows only, in sort order.
func (h galleryHandler) getActiveImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := h.images.FindAll(false)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find gallery images", "gallery images", err))
			return
		}

		h.responder.WriteJSON(w, GalleryCollection{Images: images, Total: len(images)})
	}
}

// getAllImages serves the admin list view with the search/category/status
// filters applied.
func (h galleryHandler) getAllImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := h.images.FindAll(true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find gallery images", "gallery images", err))
			return
		}

		images = FilterGalleryImages(images,
			r.URL.Query().Get("search"),
			r.URL.Query().Get("category"),
			r.URL.Query().Get("status"),
		)

		h.responder.WriteJSON(w, GalleryCollection{Images: images, Total: len(images)})
	}
}

func (h galleryHandler) createImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var image models.GalleryImage
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode gallery image request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if image.ImageURL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image_url"))
			return
		}

		if err := h.images.Add(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create gallery image", "gallery image", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, image)
	}
}

func (h galleryHandler) updateImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, apiErr := parseIDParam(r, "imageID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existingImage, err := h.images.FindByID(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find gallery image", "gallery image", err))
			return
		}
		if existingImage == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("gallery image not found"))
			return
		}

		// Decode over the stored row so unsent fields keep their values
		image := *existingImage
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode gallery image request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		image.ID = imageID
		image.CreatedAt = existingImage.CreatedAt

		if err := h.images.Update(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update gallery image", "gallery image", err))
			return
		}

		h.responder.WriteJSON(w, image)
	}
}

func (h galleryHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, apiErr := parseIDParam(r, "imageID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		image, err := h.images.FindByID(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find gallery image", "gallery image", err))
			return
		}
		if image == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("gallery image not found"))
			return
		}

		if err := h.images.Delete(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete gallery image", "gallery image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "gallery image deleted successfully",
		})
	}
}
