package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"trainbook/internal/catalog/service"
	apperrors "trainbook/pkg/errors"
	httputil "trainbook/pkg/http"
	"trainbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const (
	uploadField     = "file"
	maxUploadMemory = 8 << 20
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

func (h *CatalogHandler) Options(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	values, err := h.service.ListValues(r.Context(), ps.ByName("opt"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Options", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, values); err != nil {
		h.log.Error("failed to write list response", "handler", "Options", "operation", "WriteList", "error", err)
	}
}

func (h *CatalogHandler) ParseIDs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	file, name, err := h.uploadedFile(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ParseIDs", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	defer file.Close()

	h.log.Debug("Parsing uploaded ID list", "filename", name)
	ids, err := h.service.ParseIDs(r.Context(), file)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ParseIDs", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, ids); err != nil {
		h.log.Error("failed to write list response", "handler", "ParseIDs", "operation", "WriteList", "error", err)
	}
}

func (h *CatalogHandler) uploadedFile(r *http.Request) (multipart.File, string, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, "", apperrors.InvalidInput("Request body too large")
		}
		if !errors.Is(err, http.ErrNotMultipart) && !errors.Is(err, http.ErrMissingBoundary) {
			return nil, "", apperrors.InvalidInput("Invalid multipart body")
		}
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, "", apperrors.InvalidInput("no file")
	}
	return file, header.Filename, nil
}

func (h *CatalogHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/options/:opt", h.Options)
	router.POST("/api/parse_ids", h.ParseIDs)
}
