package services

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"patient-data-service/internal/adapters"
	"patient-data-service/internal/domain/entities"
	"patient-data-service/internal/domain/repositories"
)

// --- MockPatientRepository ---

// Compile-time check to ensure MockPatientRepository implements PatientRepository.
var _ repositories.PatientRepository = (*MockPatientRepository)(nil)

// MockPatientRepository is a mock implementation of PatientRepository.
type MockPatientRepository struct {
	CreateFunc  func(ctx context.Context, patient *entities.Patient) error
	GetByIDFunc func(ctx context.Context, id int64) (*entities.Patient, error)
	UpdateFunc  func(ctx context.Context, patient *entities.Patient) error
	DeleteFunc  func(ctx context.Context, id int64) error
	ListAllFunc func(ctx context.Context) ([]*entities.Patient, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*entities.Patient, int64, error)

	CreateCallCount  int32
	ListAllCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id int64) (*entities.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *entities.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockPatientRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	atomic.AddInt32(&m.ListAllCallCount, 1)
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) List(ctx context.Context, limit, offset int) ([]*entities.Patient, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

// --- MockScreeningRepository ---

var _ repositories.ScreeningRepository = (*MockScreeningRepository)(nil)

// MockScreeningRepository is a mock implementation of ScreeningRepository.
type MockScreeningRepository struct {
	CreateBatchFunc   func(ctx context.Context, batch *entities.ScreeningBatch) error
	UpdateBatchFunc   func(ctx context.Context, batch *entities.ScreeningBatch) error
	GetBatchFunc      func(ctx context.Context, id uuid.UUID) (*entities.ScreeningBatch, error)
	ListBatchesFunc   func(ctx context.Context) ([]*entities.ScreeningBatch, error)
	CreateResultsFunc func(ctx context.Context, results []*entities.ScreeningResult) error
	ListResultsFunc   func(ctx context.Context, batchID uuid.UUID, limit, offset int) ([]*entities.ScreeningResult, int64, error)
	PredictionsFunc   func(ctx context.Context, batchID uuid.UUID) ([]string, error)
}

func (m *MockScreeningRepository) CreateBatch(ctx context.Context, batch *entities.ScreeningBatch) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, batch)
	}
	return nil
}

func (m *MockScreeningRepository) UpdateBatch(ctx context.Context, batch *entities.ScreeningBatch) error {
	if m.UpdateBatchFunc != nil {
		return m.UpdateBatchFunc(ctx, batch)
	}
	return nil
}

func (m *MockScreeningRepository) GetBatch(ctx context.Context, id uuid.UUID) (*entities.ScreeningBatch, error) {
	if m.GetBatchFunc != nil {
		return m.GetBatchFunc(ctx, id)
	}
	return nil, errors.New("GetBatchFunc not implemented in mock")
}

func (m *MockScreeningRepository) ListBatches(ctx context.Context) ([]*entities.ScreeningBatch, error) {
	if m.ListBatchesFunc != nil {
		return m.ListBatchesFunc(ctx)
	}
	return nil, nil
}

func (m *MockScreeningRepository) CreateResults(ctx context.Context, results []*entities.ScreeningResult) error {
	if m.CreateResultsFunc != nil {
		return m.CreateResultsFunc(ctx, results)
	}
	return nil
}

func (m *MockScreeningRepository) ListResults(ctx context.Context, batchID uuid.UUID, limit, offset int) ([]*entities.ScreeningResult, int64, error) {
	if m.ListResultsFunc != nil {
		return m.ListResultsFunc(ctx, batchID, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockScreeningRepository) Predictions(ctx context.Context, batchID uuid.UUID) ([]string, error) {
	if m.PredictionsFunc != nil {
		return m.PredictionsFunc(ctx, batchID)
	}
	return nil, nil
}

// --- MockQueueAdapter ---

var _ adapters.QueueAdapter = (*MockQueueAdapter)(nil)

// MockQueueAdapter is a mock implementation of QueueAdapter.
type MockQueueAdapter struct {
	PublishFunc        func(ctx context.Context, queueName string, jobData []byte) error
	StartConsumingFunc func(ctx context.Context, queueName string, handler adapters.JobHandler) error
	StopConsumingFunc  func(ctx context.Context, queueName string) error

	PublishCallCount int32
	Published        [][]byte
}

func (m *MockQueueAdapter) Publish(ctx context.Context, queueName string, jobData []byte) error {
	atomic.AddInt32(&m.PublishCallCount, 1)
	m.Published = append(m.Published, jobData)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, queueName, jobData)
	}
	return nil
}

func (m *MockQueueAdapter) StartConsuming(ctx context.Context, queueName string, handler adapters.JobHandler) error {
	if m.StartConsumingFunc != nil {
		return m.StartConsumingFunc(ctx, queueName, handler)
	}
	return nil
}

func (m *MockQueueAdapter) StopConsuming(ctx context.Context, queueName string) error {
	if m.StopConsumingFunc != nil {
		return m.StopConsumingFunc(ctx, queueName)
	}
	return nil
}

func (m *MockQueueAdapter) Close() error { return nil }
