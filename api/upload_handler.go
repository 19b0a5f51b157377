package api

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zenatech-mv/site-backend/errs"
	"github.com/zenatech-mv/site-backend/services"
)

// maxUploadBytes bounds a single image upload.
const maxUploadBytes = 10 << 20

// imageUploader is the slice of the upload service the handler needs.
type imageUploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) services.UploadResult
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  imageUploader
}

func newUploadHandler(uploader imageUploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// uploadImage accepts a multipart form with a "file" part and returns where
// the bytes ended up. A "local_fallback" kind tells the admin UI the URL is a
// data URI and was not durably stored.
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.logger.Error().Err(err).Msg("Failed to parse multipart upload")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read upload body")
			h.responder.WriteError(w, errs.NewBadRequestError("unreadable upload body"))
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		result := h.uploader.Upload(r.Context(), header.Filename, contentType, data)
		h.responder.WriteJSON(w, result)
	}
}
