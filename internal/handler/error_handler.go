package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"
)

const codeInternal = "INTERNAL_ERROR"

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error:   domainErr.Message,
			Code:    domainErr.Code,
			Details: domainErr.Details,
		})
		return
	}

	hlog.FromRequest(r).Error().Err(err).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Code:  codeInternal,
	})
}

// handlePageError отдает ошибку страницы простым текстом
func (h *Handler) handlePageError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		http.Error(w, domainErr.Error(), getStatusCode(domainErr.Code))
		return
	}

	hlog.FromRequest(r).Error().Err(err).Msg("page failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func getStatusCode(errorCode string) int {
	switch {
	// действие над завершенным матчем - ошибка запроса, а не конфликт
	case errorCode == domain.CodeValidation, errorCode == domain.CodeMatchClosed:
		return http.StatusBadRequest
	case errorCode == domain.CodeNotFound:
		return http.StatusNotFound
	case domain.IsConflict(errorCode):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// pathID разбирает {id}; неразбираемый идентификатор не может существовать
func pathID(r *http.Request, resource string) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewNotFoundError(resource + " with id " + raw)
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("invalid request body: %v", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
