package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"patient-data-service/internal/domain/entities"
	"patient-data-service/internal/storage"
)

// resultInsertBatchSize bounds the number of rows per INSERT when
// persisting a parsed spreadsheet.
const resultInsertBatchSize = 200

// gormScreeningRepository implements ScreeningRepository on top of GORM.
type gormScreeningRepository struct {
	db *gorm.DB
}

// NewScreeningRepository creates a GORM-backed ScreeningRepository.
func NewScreeningRepository(store *storage.Store) ScreeningRepository {
	return &gormScreeningRepository{db: store.DB}
}

func (r *gormScreeningRepository) CreateBatch(ctx context.Context, batch *entities.ScreeningBatch) error {
	if err := r.db.WithContext(ctx).Create(batch).Error; err != nil {
		return fmt.Errorf("create screening batch: %w", err)
	}
	return nil
}

func (r *gormScreeningRepository) UpdateBatch(ctx context.Context, batch *entities.ScreeningBatch) error {
	res := r.db.WithContext(ctx).
		Model(&entities.ScreeningBatch{}).
		Where("id = ?", batch.ID).
		Updates(map[string]interface{}{
			"result_file": batch.ResultFile,
			"row_count":   batch.RowCount,
			"status":      batch.Status,
			"error":       batch.Error,
		})
	if res.Error != nil {
		return fmt.Errorf("update screening batch %s: %w", batch.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormScreeningRepository) GetBatch(ctx context.Context, id uuid.UUID) (*entities.ScreeningBatch, error) {
	var batch entities.ScreeningBatch
	err := r.db.WithContext(ctx).First(&batch, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get screening batch %s: %w", id, err)
	}
	return &batch, nil
}

func (r *gormScreeningRepository) ListBatches(ctx context.Context) ([]*entities.ScreeningBatch, error) {
	var batches []*entities.ScreeningBatch
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&batches).Error
	if err != nil {
		return nil, fmt.Errorf("list screening batches: %w", err)
	}
	return batches, nil
}

func (r *gormScreeningRepository) CreateResults(ctx context.Context, results []*entities.ScreeningResult) error {
	if len(results) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).CreateInBatches(results, resultInsertBatchSize).Error
	if err != nil {
		return fmt.Errorf("create screening results: %w", err)
	}
	return nil
}

func (r *gormScreeningRepository) ListResults(ctx context.Context, batchID uuid.UUID, limit, offset int) ([]*entities.ScreeningResult, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.ScreeningResult{}).
		Where("batch_id = ?", batchID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("count screening results: %w", err)
	}

	var results []*entities.ScreeningResult
	err = r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&results).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list screening results: %w", err)
	}
	return results, total, nil
}

func (r *gormScreeningRepository) Predictions(ctx context.Context, batchID uuid.UUID) ([]string, error) {
	var predictions []string
	err := r.db.WithContext(ctx).
		Model(&entities.ScreeningResult{}).
		Where("batch_id = ?", batchID).
		Order("id").
		Pluck("prediction", &predictions).Error
	if err != nil {
		return nil, fmt.Errorf("load predictions: %w", err)
	}
	return predictions, nil
}
