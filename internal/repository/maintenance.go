package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cardoctor/cardoctor-go/internal/model"
)

var ErrRecordNotFound = errors.New("maintenance record not found")

// MaintenanceRepository handles maintenance record persistence operations.
// As with cars, every query is scoped by the owning user's ID.
type MaintenanceRepository struct {
	db *sql.DB
}

// NewMaintenanceRepository creates a new MaintenanceRepository.
func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Create inserts a new maintenance record, assigning a generated ID and timestamps.
func (r *MaintenanceRepository) Create(ctx context.Context, rec *model.MaintenanceRecord) error {
	rec.ID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	rec.CreatedAt = now
	rec.UpdatedAt = now

	query := `INSERT INTO maintenance_records
		(id, car_id, user_id, type, description, cost, mileage, service_date,
		 next_due_date, next_due_mileage, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.CarID, rec.UserID, string(rec.Type), rec.Description,
		rec.Cost, rec.Mileage, rec.ServiceDate, rec.NextDueDate, rec.NextDueMileage,
		rec.Notes, rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

// ListByOwner retrieves all maintenance records for a user, newest service
// date first. A non-empty carID narrows the result to one car.
func (r *MaintenanceRepository) ListByOwner(ctx context.Context, userID, carID string) ([]model.MaintenanceRecord, error) {
	query := `SELECT id, car_id, user_id, type, description, cost, mileage, service_date,
			next_due_date, next_due_mileage, notes, created_at, updated_at
		FROM maintenance_records WHERE user_id = ?`
	args := []any{userID}

	if carID != "" {
		query += ` AND car_id = ?`
		args = append(args, carID)
	}
	query += ` ORDER BY service_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.MaintenanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// GetByID retrieves a maintenance record by ID, only if it belongs to the given user.
func (r *MaintenanceRepository) GetByID(ctx context.Context, userID, id string) (*model.MaintenanceRecord, error) {
	query := `SELECT id, car_id, user_id, type, description, cost, mileage, service_date,
			next_due_date, next_due_mileage, notes, created_at, updated_at
		FROM maintenance_records WHERE id = ? AND user_id = ?`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return &rec, nil
}

// Update replaces the mutable fields of a record owned by rec.UserID.
func (r *MaintenanceRepository) Update(ctx context.Context, rec *model.MaintenanceRecord) error {
	rec.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	query := `UPDATE maintenance_records
		SET type = ?, description = ?, cost = ?, mileage = ?, service_date = ?,
			next_due_date = ?, next_due_mileage = ?, notes = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		string(rec.Type), rec.Description, rec.Cost, rec.Mileage, rec.ServiceDate,
		rec.NextDueDate, rec.NextDueMileage, rec.Notes, rec.UpdatedAt,
		rec.ID, rec.UserID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Delete removes a maintenance record by ID, only if it belongs to the given user.
func (r *MaintenanceRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM maintenance_records WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (model.MaintenanceRecord, error) {
	var rec model.MaintenanceRecord
	var recType string
	err := s.Scan(
		&rec.ID, &rec.CarID, &rec.UserID, &recType, &rec.Description,
		&rec.Cost, &rec.Mileage, &rec.ServiceDate, &rec.NextDueDate, &rec.NextDueMileage,
		&rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	rec.Type = model.MaintenanceType(recType)
	return rec, err
}
