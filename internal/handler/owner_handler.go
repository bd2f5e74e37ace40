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

type OwnerHandler struct {
	ownerService service.OwnerService
	validator    *validator.Validate
	logger       *slog.Logger
}

func NewOwnerHandler(ownerService service.OwnerService, logger *slog.Logger) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
		validator:    validator.New(),
		logger:       logger,
	}
}

func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	owners, err := h.ownerService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, owners)
}

func (h *OwnerHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid owner id", err.Error())
		return
	}

	owner, err := h.ownerService.Find(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, owner)
}

func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	resp, err := h.ownerService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "/api/Owner/Find/")
}

func (h *OwnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid owner id", err.Error())
		return
	}

	var req dto.OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	resp, err := h.ownerService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

func (h *OwnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid owner id", err.Error())
		return
	}

	resp, err := h.ownerService.Delete(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

func (h *OwnerHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOwnerNotFound):
		respondError(h.logger, w, http.StatusNotFound, "owner not found", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		respondError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}
