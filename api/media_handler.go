package api

import (
	"errors"
	"net/http"
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
)

// uploadDirs are the folders file fields store into.
var uploadDirs = []string{"projects", "projects/thumbnails", "testimonials", "profile", "resume"}

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     services.MediaStore
	maxBytes  int64
}

func newMediaHandler(store services.MediaStore, maxUploadMB int64) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()
	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		maxBytes:  maxUploadMB << 20,
	}
}

type UploadResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// @Summary Upload a media file
// @Description Stores a multipart "file" under the "upload_to" folder and returns the name to put in a file field.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} UploadResponse
// @Router /admin/media [post]
func (h mediaHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
		if err := r.ParseMultipartForm(h.maxBytes); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxErr.Limit))
				return
			}
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		dir := r.FormValue("upload_to")
		if !slices.Contains(uploadDirs, dir) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("upload_to", "must be one of the media folders"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		name, err := h.store.Save(r.Context(), dir, header.Filename, file, contentType)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("name", name).Int64("size", header.Size).Str("operator", ctxGetOperator(r.Context())).Msg("Stored media file")
		h.responder.WriteJSONStatus(w, http.StatusCreated, UploadResponse{Name: name, URL: h.store.URL(name)})
	}
}
