package domain

import (
	"time"

	"github.com/google/uuid"

	"cv-exporter/internal/model"
)

// StoredCV is one persisted résumé document. Only the source data is
// stored; generated files are streamed to the caller and never kept.
type StoredCV struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Data      *model.CV `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
