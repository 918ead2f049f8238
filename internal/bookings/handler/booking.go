package handler

import (
	"net/http"

	"trainbook/internal/bookings/service"
	httputil "trainbook/pkg/http"
	"trainbook/pkg/logger"
	"trainbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var candidate model.CandidateBooking
	if err := httputil.DecodeJSON(r, &candidate); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Book", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	session, err := h.service.Book(r.Context(), &candidate)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Book", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, session); err != nil {
		h.log.Error("failed to write success response", "handler", "Book", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Events(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	events, err := h.service.Events(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Events", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, events); err != nil {
		h.log.Error("failed to write list response", "handler", "Events", "operation", "WriteList", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/schedule", h.Book)
	router.GET("/api/events", h.Events)
}
