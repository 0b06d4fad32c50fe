package service

// In-memory store fakes used across the service tests. They mirror the
// repository semantics: generated IDs, owner scoping, and the repository
// sentinel errors.

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cardoctor/cardoctor-go/internal/model"
	"github.com/cardoctor/cardoctor-go/internal/repository"
)

type memUserStore struct {
	users map[string]*model.User // keyed by ID
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.User)}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserStore) UpdateProfile(_ context.Context, id, email, profilePic string) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	for otherID, other := range s.users {
		if otherID != id && other.Email == email {
			return repository.ErrDuplicateEmail
		}
	}
	u.Email = email
	u.ProfilePic = profilePic
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *memUserStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

type memCarStore struct {
	cars map[string]*model.Car
}

func newMemCarStore() *memCarStore {
	return &memCarStore{cars: make(map[string]*model.Car)}
}

func (s *memCarStore) Create(_ context.Context, car *model.Car) error {
	car.ID = uuid.NewString()
	car.CreatedAt = time.Now().UTC()
	car.UpdatedAt = car.CreatedAt
	cp := *car
	s.cars[car.ID] = &cp
	return nil
}

func (s *memCarStore) ListByOwner(_ context.Context, userID string) ([]model.Car, error) {
	var cars []model.Car
	for _, c := range s.cars {
		if c.UserID == userID {
			cars = append(cars, *c)
		}
	}
	sort.Slice(cars, func(i, j int) bool {
		return cars[i].CreatedAt.After(cars[j].CreatedAt)
	})
	return cars, nil
}

func (s *memCarStore) GetByID(_ context.Context, userID, id string) (*model.Car, error) {
	c, ok := s.cars[id]
	if !ok || c.UserID != userID {
		return nil, repository.ErrCarNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *memCarStore) Update(_ context.Context, car *model.Car) error {
	existing, ok := s.cars[car.ID]
	if !ok || existing.UserID != car.UserID {
		return repository.ErrCarNotFound
	}
	car.UpdatedAt = time.Now().UTC()
	cp := *car
	s.cars[car.ID] = &cp
	return nil
}

func (s *memCarStore) Delete(_ context.Context, userID, id string) error {
	c, ok := s.cars[id]
	if !ok || c.UserID != userID {
		return repository.ErrCarNotFound
	}
	delete(s.cars, id)
	return nil
}

type memMaintenanceStore struct {
	records map[string]*model.MaintenanceRecord
}

func newMemMaintenanceStore() *memMaintenanceStore {
	return &memMaintenanceStore{records: make(map[string]*model.MaintenanceRecord)}
}

func (s *memMaintenanceStore) Create(_ context.Context, rec *model.MaintenanceRecord) error {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	cp := *rec
	s.records[rec.ID] = &cp
	return nil
}

func (s *memMaintenanceStore) ListByOwner(_ context.Context, userID, carID string) ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	for _, rec := range s.records {
		if rec.UserID != userID {
			continue
		}
		if carID != "" && rec.CarID != carID {
			continue
		}
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ServiceDate.After(records[j].ServiceDate)
	})
	return records, nil
}

func (s *memMaintenanceStore) GetByID(_ context.Context, userID, id string) (*model.MaintenanceRecord, error) {
	rec, ok := s.records[id]
	if !ok || rec.UserID != userID {
		return nil, repository.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (s *memMaintenanceStore) Update(_ context.Context, rec *model.MaintenanceRecord) error {
	existing, ok := s.records[rec.ID]
	if !ok || existing.UserID != rec.UserID {
		return repository.ErrRecordNotFound
	}
	rec.UpdatedAt = time.Now().UTC()
	cp := *rec
	s.records[rec.ID] = &cp
	return nil
}

func (s *memMaintenanceStore) Delete(_ context.Context, userID, id string) error {
	rec, ok := s.records[id]
	if !ok || rec.UserID != userID {
		return repository.ErrRecordNotFound
	}
	delete(s.records, id)
	return nil
}
