package appointments

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE appointments (
		id TEXT PRIMARY KEY,
		patient_name TEXT NOT NULL,
		doctor_name TEXT NOT NULL,
		specialty TEXT NOT NULL,
		starts_at TIMESTAMP NOT NULL,
		status TEXT NOT NULL,
		fetched_at TIMESTAMP NOT NULL
	)`)
	require.NoError(t, err)

	return NewSQLiteRepository(db)
}

func sample(id string, startsAt time.Time) models.Appointment {
	return models.Appointment{
		ID:          id,
		PatientName: "Luis",
		DoctorName:  "Ana",
		Specialty:   "cardiology",
		StartsAt:    startsAt,
		Status:      "confirmed",
	}
}

func TestGetAllEmpty(t *testing.T) {
	r := newTestRepo(t)

	items, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReplaceAllRoundTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.ReplaceAll(ctx, []models.Appointment{sample("a-1", start)}))

	items, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a-1", items[0].ID)
	assert.Equal(t, "Luis", items[0].PatientName)
	assert.Equal(t, "Ana", items[0].DoctorName)
	assert.Equal(t, "cardiology", items[0].Specialty)
	assert.Equal(t, "confirmed", items[0].Status)
	assert.True(t, items[0].StartsAt.Equal(start), "got %v", items[0].StartsAt)
}

func TestReplaceAllDiscardsPreviousCache(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.ReplaceAll(ctx, []models.Appointment{
		sample("a-1", start),
		sample("a-2", start.Add(time.Hour)),
	}))
	require.NoError(t, r.ReplaceAll(ctx, []models.Appointment{sample("a-3", start)}))

	items, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a-3", items[0].ID)
}

func TestReplaceAllWithEmptySliceClears(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.ReplaceAll(ctx, []models.Appointment{sample("a-1", time.Now().UTC())}))
	require.NoError(t, r.ReplaceAll(ctx, nil))

	items, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetAllOrdersByStartTime(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.ReplaceAll(ctx, []models.Appointment{
		sample("late", start.Add(2*time.Hour)),
		sample("early", start),
		sample("mid", start.Add(time.Hour)),
	}))

	items, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "early", items[0].ID)
	assert.Equal(t, "mid", items[1].ID)
	assert.Equal(t, "late", items[2].ID)
}

func TestReplaceAllRollsBackOnDuplicateID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	start := time.Now().UTC()

	require.NoError(t, r.ReplaceAll(ctx, []models.Appointment{sample("a-1", start)}))

	err := r.ReplaceAll(ctx, []models.Appointment{
		sample("dup", start),
		sample("dup", start),
	})
	require.Error(t, err)

	// the failed replace must not have clobbered the old cache
	items, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a-1", items[0].ID)
}
