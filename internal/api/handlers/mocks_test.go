package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"patient-data-service/internal/domain/dtos"
	"patient-data-service/internal/domain/entities"
	"patient-data-service/internal/services"
)

// --- MockPatientService ---

var _ services.PatientService = (*MockPatientService)(nil)

// MockPatientService is a mock implementation of services.PatientService.
type MockPatientService struct {
	CreateFunc  func(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error)
	GetFunc     func(ctx context.Context, id int64) (*entities.Patient, error)
	UpdateFunc  func(ctx context.Context, id int64, req dtos.UpdatePatientRequest) (*entities.Patient, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	ListAllFunc func(ctx context.Context) ([]*entities.Patient, error)
	ListFunc    func(ctx context.Context, page, perPage int) (*dtos.PatientPage, error)
}

func (m *MockPatientService) Create(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errors.New("CreateFunc not implemented in mock")
}

func (m *MockPatientService) Get(ctx context.Context, id int64) (*entities.Patient, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not implemented in mock")
}

func (m *MockPatientService) Update(ctx context.Context, id int64, req dtos.UpdatePatientRequest) (*entities.Patient, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, errors.New("UpdateFunc not implemented in mock")
}

func (m *MockPatientService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

func (m *MockPatientService) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientService) List(ctx context.Context, page, perPage int) (*dtos.PatientPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, perPage)
	}
	return &dtos.PatientPage{}, nil
}

// --- MockScreeningService ---

var _ services.ScreeningService = (*MockScreeningService)(nil)

// MockScreeningService is a mock implementation of services.ScreeningService.
type MockScreeningService struct {
	SubmitFunc         func(ctx context.Context, filename string, file io.Reader) (*entities.ScreeningBatch, error)
	HistoryFunc        func(ctx context.Context) ([]*entities.ScreeningBatch, error)
	BatchSummaryFunc   func(ctx context.Context, id uuid.UUID) (*dtos.BatchSummary, error)
	ResultsFunc        func(ctx context.Context, id uuid.UUID, page, perPage int) (*dtos.ResultsPage, error)
	ResultFilePathFunc func(ctx context.Context, id uuid.UUID) (string, error)
}

func (m *MockScreeningService) Start(ctx context.Context) error { return nil }
func (m *MockScreeningService) Stop(ctx context.Context) error  { return nil }

func (m *MockScreeningService) Submit(ctx context.Context, filename string, file io.Reader) (*entities.ScreeningBatch, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, filename, file)
	}
	return nil, errors.New("SubmitFunc not implemented in mock")
}

func (m *MockScreeningService) History(ctx context.Context) ([]*entities.ScreeningBatch, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx)
	}
	return nil, nil
}

func (m *MockScreeningService) BatchSummary(ctx context.Context, id uuid.UUID) (*dtos.BatchSummary, error) {
	if m.BatchSummaryFunc != nil {
		return m.BatchSummaryFunc(ctx, id)
	}
	return nil, errors.New("BatchSummaryFunc not implemented in mock")
}

func (m *MockScreeningService) Results(ctx context.Context, id uuid.UUID, page, perPage int) (*dtos.ResultsPage, error) {
	if m.ResultsFunc != nil {
		return m.ResultsFunc(ctx, id, page, perPage)
	}
	return nil, errors.New("ResultsFunc not implemented in mock")
}

func (m *MockScreeningService) ResultFilePath(ctx context.Context, id uuid.UUID) (string, error) {
	if m.ResultFilePathFunc != nil {
		return m.ResultFilePathFunc(ctx, id)
	}
	return "", errors.New("ResultFilePathFunc not implemented in mock")
}
