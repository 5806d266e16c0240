package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"patient-data-service/internal/domain/dtos"
	"patient-data-service/internal/domain/entities"
	"patient-data-service/internal/domain/repositories"
)

// MaxNameLength is the column limit on a patient name.
const MaxNameLength = 50

// Pagination bounds for List.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PatientServiceImpl implements PatientService.
type PatientServiceImpl struct {
	patientRepo repositories.PatientRepository
	logger      zerolog.Logger
}

// NewPatientService creates a new PatientServiceImpl.
func NewPatientService(repo repositories.PatientRepository, logger zerolog.Logger) PatientService {
	return &PatientServiceImpl{
		patientRepo: repo,
		logger:      logger,
	}
}

func validateName(name *string) error {
	if name != nil && utf8.RuneCountInString(*name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, MaxNameLength)
	}
	return nil
}

func (s *PatientServiceImpl) Create(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	patient := &entities.Patient{Name: req.Name, Age: req.Age}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", patient.ID).Msg("Patient created")
	return patient, nil
}

func (s *PatientServiceImpl) Get(ctx context.Context, id int64) (*entities.Patient, error) {
	return s.patientRepo.GetByID(ctx, id)
}

func (s *PatientServiceImpl) Update(ctx context.Context, id int64, req dtos.UpdatePatientRequest) (*entities.Patient, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	patient := &entities.Patient{ID: id, Name: req.Name, Age: req.Age}
	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", id).Msg("Patient updated")
	return patient, nil
}

func (s *PatientServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.patientRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("Patient deleted")
	return nil
}

func (s *PatientServiceImpl) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	return s.patientRepo.ListAll(ctx)
}

func (s *PatientServiceImpl) List(ctx context.Context, page, perPage int) (*dtos.PatientPage, error) {
	page, perPage = clampPage(page, perPage)

	patients, total, err := s.patientRepo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	return &dtos.PatientPage{
		Patients: patients,
		Page:     page,
		PerPage:  perPage,
		Total:    total,
	}, nil
}

// clampPage normalizes pagination parameters.
func clampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
