package apiclient

import (
	"fmt"
	"net/http"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// APIError - ответ сервиса с кодом вне 2xx
type APIError struct {
	StatusCode int
	Message    string
	Details    []domain.FieldProblem
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("listing service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("listing service returned status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func (e *APIError) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest
}
