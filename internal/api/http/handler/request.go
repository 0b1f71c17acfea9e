package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/jobmarket-server/internal/api/http/apierror"
	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/validate"
)

const (
	imageField = "file"
	// maxImageRequest bounds the multipart request, leaving room for
	// boundaries and headers around a 5MB image.
	maxImageRequest = 6 << 20
)

// sessionUser returns the authenticated user or writes a 401.
func sessionUser(cm model.ContextManager, w http.ResponseWriter, r *http.Request) (model.SessionUser, bool) {
	actor, ok := cm.SessionUserFromContext(r.Context())
	if !ok {
		response.Error(w, apierror.ErrUnauthorized)
	}
	return actor, ok
}

func pathID(r *http.Request) (int64, error) {
	return pathInt64(r, "id")
}

func pathInt64(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, model.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// pageQuery reads ?page=&pageSize=&keyword= and applies the defaults.
func pageQuery(r *http.Request) (model.PageQuery, error) {
	q := r.URL.Query()

	page, err := optionalInt(q.Get("page"))
	if err != nil {
		return model.PageQuery{}, model.NewValidationError("page", "must be a number")
	}
	pageSize, err := optionalInt(q.Get("pageSize"))
	if err != nil {
		return model.PageQuery{}, model.NewValidationError("pageSize", "must be a number")
	}

	return validate.PageQuery(model.PageQuery{
		Page:     page,
		PageSize: pageSize,
		Keyword:  q.Get("keyword"),
	})
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// readImage pulls the "file" part out of a bounded multipart request. The
// caller closes the returned file.
func readImage(w http.ResponseWriter, r *http.Request) (model.Upload, multipart.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageRequest)
	file, header, err := r.FormFile(imageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.Upload{}, nil, apierror.ErrPayloadTooLarge
		}
		return model.Upload{}, nil, model.NewValidationError(imageField, "is required")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return model.Upload{
		Reader:      file,
		Size:        header.Size,
		ContentType: contentType,
		Filename:    header.Filename,
	}, file, nil
}
