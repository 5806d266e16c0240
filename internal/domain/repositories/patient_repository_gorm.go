package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"patient-data-service/internal/domain/entities"
	"patient-data-service/internal/storage"
)

// gormPatientRepository implements PatientRepository on top of GORM.
type gormPatientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a GORM-backed PatientRepository.
func NewPatientRepository(store *storage.Store) PatientRepository {
	return &gormPatientRepository{db: store.DB}
}

func (r *gormPatientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

func (r *gormPatientRepository) GetByID(ctx context.Context, id int64) (*entities.Patient, error) {
	var patient entities.Patient
	err := r.db.WithContext(ctx).First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}
	return &patient, nil
}

// Update rewrites name and age for an existing record. The id is the
// lookup key and is never modified.
func (r *gormPatientRepository) Update(ctx context.Context, patient *entities.Patient) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Patient{}).
		Where("id = ?", patient.ID).
		Updates(map[string]interface{}{
			"name": patient.Name,
			"age":  patient.Age,
		})
	if res.Error != nil {
		return fmt.Errorf("update patient %d: %w", patient.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormPatientRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&entities.Patient{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete patient %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormPatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	var patients []*entities.Patient
	if err := r.db.WithContext(ctx).Order("id").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (r *gormPatientRepository) List(ctx context.Context, limit, offset int) ([]*entities.Patient, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	var patients []*entities.Patient
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&patients).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list patients page: %w", err)
	}
	return patients, total, nil
}
