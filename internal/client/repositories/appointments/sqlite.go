package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
	"github.com/CarlosParra69/Citas-sub001/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceAll deletes the cached rows and inserts items inside one
// transaction, so readers never observe a half-replaced cache.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, items []models.Appointment) error {
	now := time.Now().UTC()

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM appointments`); err != nil {
			return fmt.Errorf("failed to clear appointment cache: %w", err)
		}

		query := `INSERT INTO appointments (id, patient_name, doctor_name, specialty, starts_at, status, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
		for _, item := range items {
			_, err := tx.ExecContext(ctx, query,
				item.ID, item.PatientName, item.DoctorName, item.Specialty, item.StartsAt, item.Status, now)
			if err != nil {
				return fmt.Errorf("failed to cache appointment %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

// GetAll returns the cached appointments ordered by start time.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	query := `SELECT id, patient_name, doctor_name, specialty, starts_at, status
		FROM appointments ORDER BY starts_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select appointments: %w", err)
	}
	defer rows.Close()

	var result []models.Appointment
	for rows.Next() {
		var item models.Appointment
		if err := rows.Scan(&item.ID, &item.PatientName, &item.DoctorName, &item.Specialty, &item.StartsAt, &item.Status); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
