package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dealership-api/internal/dto"
)

// respondJSON сериализует тело ответа с заданным статусом
func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// respondError формирует стандартный ответ с ошибкой
func respondError(logger *slog.Logger, w http.ResponseWriter, status int, errMsg, details string) {
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	respondJSON(logger, w, status, resp)
}

// respondEnvelope переводит статус конверта в HTTP-код. При успешном
// создании выставляется заголовок Location на Find созданного ресурса
func respondEnvelope(logger *slog.Logger, w http.ResponseWriter, resp *dto.ServiceResponse, locationPrefix string) {
	switch resp.Status {
	case dto.StatusCreated:
		if locationPrefix != "" && resp.CreatedID != nil {
			w.Header().Set("Location", locationPrefix+strconv.FormatInt(*resp.CreatedID, 10))
		}
		respondJSON(logger, w, http.StatusCreated, resp)
	case dto.StatusUpdated, dto.StatusDeleted:
		respondJSON(logger, w, http.StatusOK, resp)
	case dto.StatusNotFound:
		respondJSON(logger, w, http.StatusNotFound, resp)
	case dto.StatusError:
		respondJSON(logger, w, http.StatusBadRequest, resp)
	default:
		logger.Error("unexpected service status", slog.String("status", string(resp.Status)))
		respondError(logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}

// pathID извлекает целочисленный идентификатор из сегмента пути
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
