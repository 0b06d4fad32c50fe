package service

import (
	"context"
	"errors"
	"strings"

	"github.com/cardoctor/cardoctor-go/internal/model"
	"github.com/cardoctor/cardoctor-go/internal/repository"
)

var (
	ErrBrandRequired = errors.New("brand is required")
	ErrModelRequired = errors.New("model is required")
	ErrYearInvalid   = errors.New("year must be 1886 or later")
	ErrCarNotFound   = errors.New("car not found")
)

// The first production car dates to 1886; earlier years are input errors.
const minCarYear = 1886

// CarService handles car business logic for the authenticated user.
type CarService struct {
	cars CarStore
}

// NewCarService creates a new CarService.
func NewCarService(cars CarStore) *CarService {
	return &CarService{cars: cars}
}

// Create validates and stores a new car for the user.
func (s *CarService) Create(ctx context.Context, userID string, req model.CarRequest) (model.CarResponse, error) {
	if err := validateCarRequest(req); err != nil {
		return model.CarResponse{}, err
	}

	car := &model.Car{
		UserID: userID,
		Brand:  strings.TrimSpace(req.Brand),
		Model:  strings.TrimSpace(req.CarModel),
		Year:   req.Year,
		Color:  strings.TrimSpace(req.Color),
	}

	if err := s.cars.Create(ctx, car); err != nil {
		return model.CarResponse{}, err
	}

	return car.Response(), nil
}

// List returns all of the user's cars, newest first.
func (s *CarService) List(ctx context.Context, userID string) (model.CarListResponse, error) {
	cars, err := s.cars.ListByOwner(ctx, userID)
	if err != nil {
		return model.CarListResponse{}, err
	}

	resp := model.CarListResponse{
		Count: len(cars),
		Cars:  make([]model.CarResponse, len(cars)),
	}
	for i := range cars {
		resp.Cars[i] = cars[i].Response()
	}

	return resp, nil
}

// Get returns one of the user's cars by ID. A car owned by someone else is
// indistinguishable from a missing one.
func (s *CarService) Get(ctx context.Context, userID, id string) (model.CarResponse, error) {
	car, err := s.cars.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return model.CarResponse{}, ErrCarNotFound
		}
		return model.CarResponse{}, err
	}

	return car.Response(), nil
}

// Update replaces the mutable fields of one of the user's cars.
func (s *CarService) Update(ctx context.Context, userID, id string, req model.CarRequest) (model.CarResponse, error) {
	if err := validateCarRequest(req); err != nil {
		return model.CarResponse{}, err
	}

	car, err := s.cars.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return model.CarResponse{}, ErrCarNotFound
		}
		return model.CarResponse{}, err
	}

	car.Brand = strings.TrimSpace(req.Brand)
	car.Model = strings.TrimSpace(req.CarModel)
	car.Year = req.Year
	car.Color = strings.TrimSpace(req.Color)

	if err := s.cars.Update(ctx, car); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return model.CarResponse{}, ErrCarNotFound
		}
		return model.CarResponse{}, err
	}

	return car.Response(), nil
}

// Delete removes one of the user's cars.
func (s *CarService) Delete(ctx context.Context, userID, id string) error {
	err := s.cars.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrCarNotFound) {
		return ErrCarNotFound
	}
	return err
}

func validateCarRequest(req model.CarRequest) error {
	if strings.TrimSpace(req.Brand) == "" {
		return ErrBrandRequired
	}
	if strings.TrimSpace(req.CarModel) == "" {
		return ErrModelRequired
	}
	if req.Year < minCarYear {
		return ErrYearInvalid
	}
	return nil
}
