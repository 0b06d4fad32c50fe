package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardoctor/cardoctor-go/internal/middleware"
	"github.com/cardoctor/cardoctor-go/internal/model"
	"github.com/cardoctor/cardoctor-go/internal/service"
)

// CarHandler handles HTTP requests for car operations.
type CarHandler struct {
	service *service.CarService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(svc *service.CarService) *CarHandler {
	return &CarHandler{service: svc}
}

// HandleListCars handles GET /api/v1/cars requests.
func (h *CarHandler) HandleListCars(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreateCar handles POST /api/v1/cars requests.
func (h *CarHandler) HandleCreateCar(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CarRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	car, err := h.service.Create(r.Context(), identity.UserID, req)
	if err != nil {
		if isCarValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, model.CarEnvelope{
		Message: "Car created successfully",
		Car:     car,
	})
}

// HandleGetCar handles GET /api/v1/cars/{car_id} requests.
func (h *CarHandler) HandleGetCar(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	carID := chi.URLParam(r, "car_id")
	if carID == "" || len(carID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid car id"))
		return
	}

	car, err := h.service.Get(r.Context(), identity.UserID, carID)
	if err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.CarEnvelope{Car: car})
}

// HandleUpdateCar handles PUT /api/v1/cars/{car_id} requests.
func (h *CarHandler) HandleUpdateCar(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	carID := chi.URLParam(r, "car_id")
	if carID == "" || len(carID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid car id"))
		return
	}

	var req model.CarRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	car, err := h.service.Update(r.Context(), identity.UserID, carID, req)
	if err != nil {
		switch {
		case isCarValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrCarNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.CarEnvelope{
		Message: "Car updated successfully",
		Car:     car,
	})
}

// HandleDeleteCar handles DELETE /api/v1/cars/{car_id} requests.
func (h *CarHandler) HandleDeleteCar(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	carID := chi.URLParam(r, "car_id")
	if carID == "" || len(carID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid car id"))
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, carID); err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("Car deleted successfully"))
}

func isCarValidationError(err error) bool {
	return errors.Is(err, service.ErrBrandRequired) ||
		errors.Is(err, service.ErrModelRequired) ||
		errors.Is(err, service.ErrYearInvalid)
}
