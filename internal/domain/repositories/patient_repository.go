package repositories

import (
	"context"
	"errors"

	"patient-data-service/internal/domain/entities"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// PatientRepository defines the interface for patient data operations.
type PatientRepository interface {
	Create(ctx context.Context, patient *entities.Patient) error
	GetByID(ctx context.Context, id int64) (*entities.Patient, error)
	Update(ctx context.Context, patient *entities.Patient) error
	Delete(ctx context.Context, id int64) error
	// ListAll returns every stored patient record exactly once, with no
	// implicit filtering. Results are ordered by id for determinism.
	ListAll(ctx context.Context) ([]*entities.Patient, error)
	// List returns one page of patient records plus the total count.
	List(ctx context.Context, limit, offset int) ([]*entities.Patient, int64, error)
}
