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

type StaffHandler struct {
	staffService service.StaffService
	validator    *validator.Validate
	logger       *slog.Logger
}

func NewStaffHandler(staffService service.StaffService, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
		validator:    validator.New(),
		logger:       logger,
	}
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	staffs, err := h.staffService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, staffs)
}

func (h *StaffHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid staff id", err.Error())
		return
	}

	staff, err := h.staffService.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, staff)
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.StaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	resp, err := h.staffService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "/api/StaffAPI/Find/")
}

func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid staff id", err.Error())
		return
	}

	var req dto.StaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	resp, err := h.staffService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid staff id", err.Error())
		return
	}

	resp, err := h.staffService.Delete(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

// ListTasks возвращает задачи сотрудника. Пустой список считается
// отсутствием назначений и отдаётся как 404, как в странице деталей
func (h *StaffHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	staffID, err := pathID(r, "staffId")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid staff id", err.Error())
		return
	}

	tasks, err := h.staffService.ListWorkTasks(r.Context(), staffID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if len(tasks) == 0 {
		respondError(h.logger, w, http.StatusNotFound, "no tasks found for this staff member", "")
		return
	}
	respondJSON(h.logger, w, http.StatusOK, tasks)
}

func (h *StaffHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	staffID, taskID, ok := h.pairIDs(w, r)
	if !ok {
		return
	}

	resp, err := h.staffService.AssignWorkTask(r.Context(), staffID, taskID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

func (h *StaffHandler) RemoveTask(w http.ResponseWriter, r *http.Request) {
	staffID, taskID, ok := h.pairIDs(w, r)
	if !ok {
		return
	}

	resp, err := h.staffService.RemoveWorkTask(r.Context(), staffID, taskID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

func (h *StaffHandler) pairIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	staffID, err := pathID(r, "staffId")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid staff id", err.Error())
		return 0, 0, false
	}
	taskID, err := pathID(r, "taskId")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid task id", err.Error())
		return 0, 0, false
	}
	return staffID, taskID, true
}

func (h *StaffHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrStaffNotFound):
		respondError(h.logger, w, http.StatusNotFound, "staff not found", "")
	case errors.Is(err, domain.ErrWorkTaskNotFound):
		respondError(h.logger, w, http.StatusNotFound, "work task not found", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		respondError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}
