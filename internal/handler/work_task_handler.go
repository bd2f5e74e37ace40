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

type WorkTaskHandler struct {
	taskService service.WorkTaskService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewWorkTaskHandler(taskService service.WorkTaskService, logger *slog.Logger) *WorkTaskHandler {
	return &WorkTaskHandler{
		taskService: taskService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *WorkTaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, tasks)
}

func (h *WorkTaskHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid task id", err.Error())
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, task)
}

func (h *WorkTaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.WorkTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	resp, err := h.taskService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "/api/TaskAPI/Find/")
}

func (h *WorkTaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid task id", err.Error())
		return
	}

	var req dto.WorkTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	resp, err := h.taskService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

func (h *WorkTaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid task id", err.Error())
		return
	}

	resp, err := h.taskService.Delete(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

// ListStaff возвращает сотрудников задачи; пустой список - валидный ответ
func (h *WorkTaskHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskId")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid task id", err.Error())
		return
	}

	staffs, err := h.taskService.ListStaffs(r.Context(), taskID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, staffs)
}

func (h *WorkTaskHandler) AssignStaff(w http.ResponseWriter, r *http.Request) {
	taskID, staffID, ok := h.pairIDs(w, r)
	if !ok {
		return
	}

	resp, err := h.taskService.AssignStaff(r.Context(), taskID, staffID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

func (h *WorkTaskHandler) RemoveStaff(w http.ResponseWriter, r *http.Request) {
	taskID, staffID, ok := h.pairIDs(w, r)
	if !ok {
		return
	}

	resp, err := h.taskService.RemoveStaff(r.Context(), taskID, staffID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondEnvelope(h.logger, w, resp, "")
}

func (h *WorkTaskHandler) pairIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	taskID, err := pathID(r, "taskId")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid task id", err.Error())
		return 0, 0, false
	}
	staffID, err := pathID(r, "staffId")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid staff id", err.Error())
		return 0, 0, false
	}
	return taskID, staffID, true
}

func (h *WorkTaskHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrWorkTaskNotFound):
		respondError(h.logger, w, http.StatusNotFound, "work task not found", "")
	case errors.Is(err, domain.ErrStaffNotFound):
		respondError(h.logger, w, http.StatusNotFound, "staff not found", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		respondError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}
