package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cardoctor/cardoctor-go/internal/model"
	"github.com/cardoctor/cardoctor-go/internal/repository"
)

var (
	ErrCarIDRequired       = errors.New("carId is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrMileageRequired     = errors.New("mileage is required")
	ErrInvalidType         = errors.New("invalid maintenance type")
	ErrNegativeCost        = errors.New("cost must not be negative")
	ErrNegativeMileage     = errors.New("mileage must not be negative")
	ErrRecordNotFound      = errors.New("maintenance record not found")
)

// MaintenanceService handles maintenance record business logic. Record
// creation is gated on the referenced car being owned by the requester.
type MaintenanceService struct {
	records MaintenanceStore
	cars    CarStore
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(records MaintenanceStore, cars CarStore) *MaintenanceService {
	return &MaintenanceService{records: records, cars: cars}
}

// Create validates and stores a new maintenance record. The referenced car
// must exist and belong to the user; a foreign car reads as not found.
func (s *MaintenanceService) Create(ctx context.Context, userID string, req model.CreateMaintenanceRequest) (model.MaintenanceResponse, error) {
	if req.CarID == "" {
		return model.MaintenanceResponse{}, ErrCarIDRequired
	}
	recType := model.MaintenanceType(req.Type)
	if !recType.Valid() {
		return model.MaintenanceResponse{}, ErrInvalidType
	}
	if strings.TrimSpace(req.Description) == "" {
		return model.MaintenanceResponse{}, ErrDescriptionRequired
	}
	if req.Mileage == nil {
		return model.MaintenanceResponse{}, ErrMileageRequired
	}
	if *req.Mileage < 0 {
		return model.MaintenanceResponse{}, ErrNegativeMileage
	}
	if req.Cost != nil && *req.Cost < 0 {
		return model.MaintenanceResponse{}, ErrNegativeCost
	}
	if req.NextDueMileage != nil && *req.NextDueMileage < 0 {
		return model.MaintenanceResponse{}, ErrNegativeMileage
	}

	if _, err := s.cars.GetByID(ctx, userID, req.CarID); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return model.MaintenanceResponse{}, ErrCarNotFound
		}
		return model.MaintenanceResponse{}, err
	}

	rec := &model.MaintenanceRecord{
		CarID:          req.CarID,
		UserID:         userID,
		Type:           recType,
		Description:    strings.TrimSpace(req.Description),
		Mileage:        *req.Mileage,
		ServiceDate:    time.Now().UTC().Truncate(time.Second),
		NextDueDate:    req.NextDueDate,
		NextDueMileage: req.NextDueMileage,
		Notes:          req.Notes,
	}
	if req.Cost != nil {
		rec.Cost = *req.Cost
	}
	if req.Date != nil {
		rec.ServiceDate = req.Date.UTC()
	}

	if err := s.records.Create(ctx, rec); err != nil {
		return model.MaintenanceResponse{}, err
	}

	return rec.Response(), nil
}

// List returns the user's maintenance records, newest service date first,
// optionally filtered to one car.
func (s *MaintenanceService) List(ctx context.Context, userID, carID string) (model.MaintenanceListResponse, error) {
	records, err := s.records.ListByOwner(ctx, userID, carID)
	if err != nil {
		return model.MaintenanceListResponse{}, err
	}

	resp := model.MaintenanceListResponse{
		Count:   len(records),
		Records: make([]model.MaintenanceResponse, len(records)),
	}
	for i := range records {
		resp.Records[i] = records[i].Response()
	}

	return resp, nil
}

// Get returns one of the user's maintenance records by ID.
func (s *MaintenanceService) Get(ctx context.Context, userID, id string) (model.MaintenanceResponse, error) {
	rec, err := s.records.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return model.MaintenanceResponse{}, ErrRecordNotFound
		}
		return model.MaintenanceResponse{}, err
	}

	return rec.Response(), nil
}

// Update applies a partial update to one of the user's records, re-validating
// constrained fields on the merged result.
func (s *MaintenanceService) Update(ctx context.Context, userID, id string, req model.UpdateMaintenanceRequest) (model.MaintenanceResponse, error) {
	rec, err := s.records.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return model.MaintenanceResponse{}, ErrRecordNotFound
		}
		return model.MaintenanceResponse{}, err
	}

	if req.Type != nil {
		recType := model.MaintenanceType(*req.Type)
		if !recType.Valid() {
			return model.MaintenanceResponse{}, ErrInvalidType
		}
		rec.Type = recType
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return model.MaintenanceResponse{}, ErrDescriptionRequired
		}
		rec.Description = strings.TrimSpace(*req.Description)
	}
	if req.Cost != nil {
		if *req.Cost < 0 {
			return model.MaintenanceResponse{}, ErrNegativeCost
		}
		rec.Cost = *req.Cost
	}
	if req.Mileage != nil {
		if *req.Mileage < 0 {
			return model.MaintenanceResponse{}, ErrNegativeMileage
		}
		rec.Mileage = *req.Mileage
	}
	if req.Date != nil {
		rec.ServiceDate = req.Date.UTC()
	}
	if req.NextDueDate != nil {
		rec.NextDueDate = req.NextDueDate
	}
	if req.NextDueMileage != nil {
		if *req.NextDueMileage < 0 {
			return model.MaintenanceResponse{}, ErrNegativeMileage
		}
		rec.NextDueMileage = req.NextDueMileage
	}
	if req.Notes != nil {
		rec.Notes = *req.Notes
	}

	if err := s.records.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return model.MaintenanceResponse{}, ErrRecordNotFound
		}
		return model.MaintenanceResponse{}, err
	}

	return rec.Response(), nil
}

// Delete removes one of the user's maintenance records.
func (s *MaintenanceService) Delete(ctx context.Context, userID, id string) error {
	err := s.records.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}
