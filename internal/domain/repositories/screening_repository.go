package repositories

import (
	"context"

	"github.com/google/uuid"

	"patient-data-service/internal/domain/entities"
)

// ScreeningRepository defines the interface for screening batch and
// result persistence.
type ScreeningRepository interface {
	CreateBatch(ctx context.Context, batch *entities.ScreeningBatch) error
	UpdateBatch(ctx context.Context, batch *entities.ScreeningBatch) error
	GetBatch(ctx context.Context, id uuid.UUID) (*entities.ScreeningBatch, error)
	// ListBatches returns the run history, newest first.
	ListBatches(ctx context.Context) ([]*entities.ScreeningBatch, error)
	CreateResults(ctx context.Context, results []*entities.ScreeningResult) error
	// ListResults returns one page of a batch's rows plus the total count.
	ListResults(ctx context.Context, batchID uuid.UUID, limit, offset int) ([]*entities.ScreeningResult, int64, error)
	// Predictions returns the raw prediction strings of a batch, one per row.
	Predictions(ctx context.Context, batchID uuid.UUID) ([]string, error)
}
