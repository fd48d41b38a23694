package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/contracts"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port/usecases_port"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// PropertyHandler обслуживает /api/properties
type PropertyHandler struct {
	listUC   usecases_port.ListPropertiesUseCase
	getUC    usecases_port.GetPropertyUseCase
	createUC usecases_port.CreatePropertyUseCase
	updateUC usecases_port.UpdatePropertyUseCase
	deleteUC usecases_port.DeletePropertyUseCase
}

func NewPropertyHandler(
	listUC usecases_port.ListPropertiesUseCase,
	getUC usecases_port.GetPropertyUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ListProperties обрабатывает GET /api/properties
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	filters := ParsePropertyFilters(r.URL.Query())
	properties, err := h.listUC.Execute(r.Context(), filters)
	if err != nil {
		logger.Error("List properties use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Error fetching properties")
		return
	}

	response := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		response[i] = toPropertyResponse(p)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetProperty обрабатывает GET /api/properties/{id}
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "GetProperty",
		"property_id": id,
	})

	property, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		h.writeUseCaseError(w, logger, err, "Error fetching property")
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

// CreateProperty обрабатывает POST /api/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	req, err := decodePropertyRequest(r, contracts.PropertyCreateV1)
	if err != nil {
		h.writeUseCaseError(w, logger, err, "Error creating property")
		return
	}

	created, err := h.createUC.Execute(r.Context(), req.toPatch())
	if err != nil {
		h.writeUseCaseError(w, logger, err, "Error creating property")
		return
	}

	logger.Info("Property created", port.Fields{"property_id": created.ID})
	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(*created))
}

// UpdateProperty обрабатывает PUT /api/properties/{id}
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "UpdateProperty",
		"property_id": id,
	})

	req, err := decodePropertyRequest(r, contracts.PropertyUpdateV1)
	if err != nil {
		h.writeUseCaseError(w, logger, err, "Error updating property")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), id, req.toPatch())
	if err != nil {
		h.writeUseCaseError(w, logger, err, "Error updating property")
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*updated))
}

// DeleteProperty обрабатывает DELETE /api/properties/{id}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "DeleteProperty",
		"property_id": id,
	})

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		h.writeUseCaseError(w, logger, err, "Error deleting property")
		return
	}

	logger.Info("Property deleted", nil)
	RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Property deleted successfully"})
}

// writeUseCaseError переводит ошибки ядра в HTTP-статусы
func (h *PropertyHandler) writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error, message string) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		logger.Warn("Request rejected by validation", port.Fields{"error": err.Error()})
		WriteValidationError(w, message, vErr)
	case errors.Is(err, domain.ErrPropertyNotFound):
		WriteJSONError(w, http.StatusNotFound, "Property not found")
	default:
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, message)
	}
}

// decodePropertyRequest читает тело, проверяет его по контракту
// и только потом декодирует в DTO
func decodePropertyRequest(r *http.Request, contract string) (*PropertyRequest, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, domain.NewValidationError("body", "could not read request body")
	}
	if len(body) > maxBodyBytes {
		return nil, domain.NewValidationError("body", "request body is too large")
	}

	if err := contracts.ValidatePayload(contract, body); err != nil {
		return nil, err
	}

	var req PropertyRequest
	decoder := json.NewDecoder(bytes.NewReader(body))
	if err := decoder.Decode(&req); err != nil {
		return nil, domain.NewValidationError("body", "must be a JSON object with property fields")
	}
	if err := req.checkBedrooms(); err != nil {
		return nil, err
	}
	return &req, nil
}
