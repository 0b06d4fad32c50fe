package model

import "time"

// MaintenanceType enumerates the supported service categories.
type MaintenanceType string

const (
	TypeOilChange          MaintenanceType = "oil_change"
	TypeTireRotation       MaintenanceType = "tire_rotation"
	TypeBrakeService       MaintenanceType = "brake_service"
	TypeBatteryReplacement MaintenanceType = "battery_replacement"
	TypeAirFilter          MaintenanceType = "air_filter"
	TypeFuelFilter         MaintenanceType = "fuel_filter"
	TypeTransmissionFluid  MaintenanceType = "transmission_fluid"
	TypeCoolantFlush       MaintenanceType = "coolant_flush"
	TypeInspection         MaintenanceType = "inspection"
	TypeOther              MaintenanceType = "other"
)

// Valid reports whether t is one of the supported service categories.
func (t MaintenanceType) Valid() bool {
	switch t {
	case TypeOilChange, TypeTireRotation, TypeBrakeService, TypeBatteryReplacement,
		TypeAirFilter, TypeFuelFilter, TypeTransmissionFluid, TypeCoolantFlush,
		TypeInspection, TypeOther:
		return true
	}
	return false
}

// MaintenanceRecord represents a service event on a car.
type MaintenanceRecord struct {
	ID             string
	CarID          string
	UserID         string
	Type           MaintenanceType
	Description    string
	Cost           float64
	Mileage        int64
	ServiceDate    time.Time
	NextDueDate    *time.Time
	NextDueMileage *int64
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Response maps a stored record to its API shape.
func (m *MaintenanceRecord) Response() MaintenanceResponse {
	return MaintenanceResponse{
		ID:             m.ID,
		CarID:          m.CarID,
		Type:           m.Type,
		Description:    m.Description,
		Cost:           m.Cost,
		Mileage:        m.Mileage,
		Date:           m.ServiceDate,
		NextDueDate:    m.NextDueDate,
		NextDueMileage: m.NextDueMileage,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CreateMaintenanceRequest represents a record creation request. Cost defaults
// to 0 and date to the current time when omitted.
type CreateMaintenanceRequest struct {
	CarID          string     `json:"carId"`
	Type           string     `json:"type"`
	Description    string     `json:"description"`
	Cost           *float64   `json:"cost"`
	Mileage        *int64     `json:"mileage"`
	Date           *time.Time `json:"date"`
	NextDueDate    *time.Time `json:"nextDueDate"`
	NextDueMileage *int64     `json:"nextDueMileage"`
	Notes          string     `json:"notes"`
}

// UpdateMaintenanceRequest represents a partial record update. Nil fields are
// left unchanged.
type UpdateMaintenanceRequest struct {
	Type           *string    `json:"type"`
	Description    *string    `json:"description"`
	Cost           *float64   `json:"cost"`
	Mileage        *int64     `json:"mileage"`
	Date           *time.Time `json:"date"`
	NextDueDate    *time.Time `json:"nextDueDate"`
	NextDueMileage *int64     `json:"nextDueMileage"`
	Notes          *string    `json:"notes"`
}

// MaintenanceResponse represents a maintenance record exposed over the API.
type MaintenanceResponse struct {
	ID             string          `json:"id"`
	CarID          string          `json:"carId"`
	Type           MaintenanceType `json:"type"`
	Description    string          `json:"description"`
	Cost           float64         `json:"cost"`
	Mileage        int64           `json:"mileage"`
	Date           time.Time       `json:"date"`
	NextDueDate    *time.Time      `json:"nextDueDate,omitempty"`
	NextDueMileage *int64          `json:"nextDueMileage,omitempty"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// MaintenanceListResponse is the list envelope for GET /maintenance.
type MaintenanceListResponse struct {
	Count   int                   `json:"count"`
	Records []MaintenanceResponse `json:"records"`
}

// MaintenanceEnvelope wraps a single record, with an optional message on mutations.
type MaintenanceEnvelope struct {
	Message string              `json:"message,omitempty"`
	Record  MaintenanceResponse `json:"record"`
}
