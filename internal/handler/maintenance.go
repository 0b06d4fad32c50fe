package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardoctor/cardoctor-go/internal/middleware"
	"github.com/cardoctor/cardoctor-go/internal/model"
	"github.com/cardoctor/cardoctor-go/internal/service"
)

// MaintenanceHandler handles HTTP requests for maintenance record operations.
type MaintenanceHandler struct {
	service *service.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(svc *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: svc}
}

// HandleListRecords handles GET /api/v1/maintenance requests. An optional
// carId query parameter narrows the list to one car.
func (h *MaintenanceHandler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	carID := r.URL.Query().Get("carId")
	if len(carID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid car id"))
		return
	}

	resp, err := h.service.List(r.Context(), identity.UserID, carID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreateRecord handles POST /api/v1/maintenance requests.
func (h *MaintenanceHandler) HandleCreateRecord(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateMaintenanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	rec, err := h.service.Create(r.Context(), identity.UserID, req)
	if err != nil {
		switch {
		case isMaintenanceValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrCarNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, model.MaintenanceEnvelope{
		Message: "Maintenance record created successfully",
		Record:  rec,
	})
}

// HandleGetRecord handles GET /api/v1/maintenance/{record_id} requests.
func (h *MaintenanceHandler) HandleGetRecord(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recordID := chi.URLParam(r, "record_id")
	if recordID == "" || len(recordID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid record id"))
		return
	}

	rec, err := h.service.Get(r.Context(), identity.UserID, recordID)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.MaintenanceEnvelope{Record: rec})
}

// HandleUpdateRecord handles PUT /api/v1/maintenance/{record_id} requests.
func (h *MaintenanceHandler) HandleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recordID := chi.URLParam(r, "record_id")
	if recordID == "" || len(recordID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid record id"))
		return
	}

	var req model.UpdateMaintenanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	rec, err := h.service.Update(r.Context(), identity.UserID, recordID, req)
	if err != nil {
		switch {
		case isMaintenanceValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrRecordNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.MaintenanceEnvelope{
		Message: "Maintenance record updated successfully",
		Record:  rec,
	})
}

// HandleDeleteRecord handles DELETE /api/v1/maintenance/{record_id} requests.
func (h *MaintenanceHandler) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recordID := chi.URLParam(r, "record_id")
	if recordID == "" || len(recordID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid record id"))
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, recordID); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("Maintenance record deleted successfully"))
}

func isMaintenanceValidationError(err error) bool {
	return errors.Is(err, service.ErrCarIDRequired) ||
		errors.Is(err, service.ErrDescriptionRequired) ||
		errors.Is(err, service.ErrMileageRequired) ||
		errors.Is(err, service.ErrInvalidType) ||
		errors.Is(err, service.ErrNegativeCost) ||
		errors.Is(err, service.ErrNegativeMileage)
}
