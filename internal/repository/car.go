package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cardoctor/cardoctor-go/internal/model"
)

var ErrCarNotFound = errors.New("car not found")

// CarRepository handles car persistence operations. Every query is scoped by
// the owning user's ID, so a car is never visible outside its owner.
type CarRepository struct {
	db *sql.DB
}

// NewCarRepository creates a new CarRepository.
func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{db: db}
}

// Create inserts a new car, assigning a generated ID and timestamps.
func (r *CarRepository) Create(ctx context.Context, car *model.Car) error {
	car.ID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	car.CreatedAt = now
	car.UpdatedAt = now

	query := `INSERT INTO cars (id, user_id, brand, model, year, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		car.ID, car.UserID, car.Brand, car.Model, car.Year, car.Color,
		car.CreatedAt, car.UpdatedAt,
	)
	return err
}

// ListByOwner retrieves all cars for a user, newest first.
func (r *CarRepository) ListByOwner(ctx context.Context, userID string) ([]model.Car, error) {
	query := `SELECT id, user_id, brand, model, year, color, created_at, updated_at
		FROM cars WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []model.Car
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Brand, &c.Model, &c.Year, &c.Color,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}

	return cars, rows.Err()
}

// GetByID retrieves a car by ID, only if it belongs to the given user.
func (r *CarRepository) GetByID(ctx context.Context, userID, id string) (*model.Car, error) {
	query := `SELECT id, user_id, brand, model, year, color, created_at, updated_at
		FROM cars WHERE id = ? AND user_id = ?`

	car := &model.Car{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&car.ID, &car.UserID, &car.Brand, &car.Model, &car.Year, &car.Color,
		&car.CreatedAt, &car.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	return car, nil
}

// Update replaces the mutable fields of a car owned by car.UserID.
func (r *CarRepository) Update(ctx context.Context, car *model.Car) error {
	car.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	query := `UPDATE cars SET brand = ?, model = ?, year = ?, color = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		car.Brand, car.Model, car.Year, car.Color, car.UpdatedAt,
		car.ID, car.UserID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// Delete removes a car by ID, only if it belongs to the given user.
func (r *CarRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM cars WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}
