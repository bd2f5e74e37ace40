package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dealership-api/internal/domain"
	"github.com/dealership-api/internal/dto"
	"github.com/dealership-api/internal/service"
	"github.com/go-playground/validator/v10"
)

type CarHandler struct {
	carService service.CarService
	validator  *validator.Validate
	logger     *slog.Logger
}

func NewCarHandler(carService service.CarService, logger *slog.Logger) *CarHandler {
	return &CarHandler{
		carService: carService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, cars)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid car id", err.Error())
		return
	}

	car, err := h.carService.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, car)
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	resp, err := h.carService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "/api/Cars/")
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid car id", err.Error())
		return
	}

	var req dto.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	resp, err := h.carService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid car id", err.Error())
		return
	}

	resp, err := h.carService.Delete(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

func (h *CarHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCarNotFound):
		respondError(h.logger, w, http.StatusNotFound, "car not found", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		respondError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}
