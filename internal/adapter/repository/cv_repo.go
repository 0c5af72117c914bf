package repository

import (
	"context"
	"encoding/json"
	"errors"

	"cv-exporter/internal/domain"
	"cv-exporter/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var ErrNotFound = errors.New("cv not found")

type CVRepo struct {
	pool *pgxpool.Pool
}

func NewCVRepo(pool *pgxpool.Pool) *CVRepo {
	return &CVRepo{pool: pool}
}

// Save upserts the CV row. A nil pool degrades to a no-op so the export
// engine keeps working without a database.
func (r *CVRepo) Save(ctx context.Context, cv *domain.StoredCV) error {
	if r.pool == nil {
		return nil
	}

	dataB, err := json.Marshal(cv.Data)
	if err != nil {
		return err
	}

	title := cv.Title
	if title == "" && cv.Data != nil {
		title = cv.Data.DocumentTitle()
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO cvs (id, user_id, title, data, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET user_id = EXCLUDED.user_id, title = EXCLUDED.title, data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		cv.ID, cv.UserID, title, dataB, cv.CreatedAt, cv.UpdatedAt)
	return err
}

// GetByID loads one stored CV; the export engine builds a fresh model from
// it per export call.
func (r *CVRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredCV, error) {
	if r.pool == nil {
		return nil, ErrNotFound
	}

	var out domain.StoredCV
	var dataB []byte
	row := r.pool.QueryRow(ctx, `SELECT id, user_id, title, data, created_at, updated_at FROM cvs WHERE id = $1`, id)
	if err := row.Scan(&out.ID, &out.UserID, &out.Title, &dataB, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var cv model.CV
	if err := json.Unmarshal(dataB, &cv); err != nil {
		return nil, err
	}
	if cv.Title == "" {
		cv.Title = out.Title
	}
	out.Data = &cv
	return &out, nil
}
