package service

import (
	"context"

	"github.com/cardoctor/cardoctor-go/internal/model"
)

// UserStore is the persistence seam for user accounts, implemented by
// repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, id, email, profilePic string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// CarStore is the persistence seam for cars, implemented by
// repository.CarRepository.
type CarStore interface {
	Create(ctx context.Context, car *model.Car) error
	ListByOwner(ctx context.Context, userID string) ([]model.Car, error)
	GetByID(ctx context.Context, userID, id string) (*model.Car, error)
	Update(ctx context.Context, car *model.Car) error
	Delete(ctx context.Context, userID, id string) error
}

// MaintenanceStore is the persistence seam for maintenance records,
// implemented by repository.MaintenanceRepository.
type MaintenanceStore interface {
	Create(ctx context.Context, rec *model.MaintenanceRecord) error
	ListByOwner(ctx context.Context, userID, carID string) ([]model.MaintenanceRecord, error)
	GetByID(ctx context.Context, userID, id string) (*model.MaintenanceRecord, error)
	Update(ctx context.Context, rec *model.MaintenanceRecord) error
	Delete(ctx context.Context, userID, id string) error
}
