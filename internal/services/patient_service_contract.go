package services

import (
	"context"
	"errors"

	"patient-data-service/internal/domain/dtos"
	"patient-data-service/internal/domain/entities"
)

// ErrValidation marks request payloads rejected before reaching storage.
var ErrValidation = errors.New("validation failed")

// PatientService exposes patient record operations to the API layer.
type PatientService interface {
	Create(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error)
	Get(ctx context.Context, id int64) (*entities.Patient, error)
	Update(ctx context.Context, id int64, req dtos.UpdatePatientRequest) (*entities.Patient, error)
	Delete(ctx context.Context, id int64) error
	// ListAll returns every stored patient record.
	ListAll(ctx context.Context) ([]*entities.Patient, error)
	// List returns one page of patient records.
	List(ctx context.Context, page, perPage int) (*dtos.PatientPage, error)
}
