package rest

import (
	"encoding/json"
	"net/http"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Message string                `json:"message"`
	Error   string                `json:"error,omitempty"`
	Details []domain.FieldProblem `json:"details,omitempty"`
}

// WriteJSONError отправляет ошибку в формате {"message": ...}
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Message: message})
}

// WriteValidationError отправляет 400 со списком нарушенных полей
func WriteValidationError(w http.ResponseWriter, message string, vErr *domain.ValidationError) {
	RespondWithJSON(w, http.StatusBadRequest, ErrorResponse{
		Message: message,
		Error:   vErr.Error(),
		Details: vErr.Problems,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}
