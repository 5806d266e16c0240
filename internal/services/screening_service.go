package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"patient-data-service/internal/adapters"
	"patient-data-service/internal/domain/dtos"
	"patient-data-service/internal/domain/entities"
	"patient-data-service/internal/domain/repositories"
	"patient-data-service/internal/importer"
	"patient-data-service/internal/screening"
)

// ScreeningJobQueue is the queue carrying pending screening jobs.
const ScreeningJobQueue = "screening_jobs"

// screeningJob is the message enqueued for each uploaded spreadsheet.
type screeningJob struct {
	BatchID    uuid.UUID `json:"batch_id"`
	StoredPath string    `json:"stored_path"`
}

// ScreeningServiceImpl implements ScreeningService.
type ScreeningServiceImpl struct {
	screeningRepo repositories.ScreeningRepository
	queue         adapters.QueueAdapter
	uploadDir     string
	resultsDir    string
	logger        zerolog.Logger
}

// NewScreeningService creates a new ScreeningServiceImpl.
func NewScreeningService(
	repo repositories.ScreeningRepository,
	queue adapters.QueueAdapter,
	uploadDir, resultsDir string,
	logger zerolog.Logger,
) *ScreeningServiceImpl {
	return &ScreeningServiceImpl{
		screeningRepo: repo,
		queue:         queue,
		uploadDir:     uploadDir,
		resultsDir:    resultsDir,
		logger:        logger,
	}
}

// Start begins consuming screening jobs from the queue.
func (s *ScreeningServiceImpl) Start(ctx context.Context) error {
	if err := s.queue.StartConsuming(ctx, ScreeningJobQueue, s.handleJob); err != nil {
		return fmt.Errorf("start screening consumer: %w", err)
	}
	s.logger.Info().Str("queue", ScreeningJobQueue).Msg("Screening service started")
	return nil
}

// Stop shuts down the screening job consumer.
func (s *ScreeningServiceImpl) Stop(ctx context.Context) error {
	if err := s.queue.StopConsuming(ctx, ScreeningJobQueue); err != nil {
		return fmt.Errorf("stop screening consumer: %w", err)
	}
	s.logger.Info().Msg("Screening service stopped")
	return nil
}

// Submit stores the upload under a fresh uuid, records a pending batch
// and publishes a job for the consumer.
func (s *ScreeningServiceImpl) Submit(ctx context.Context, filename string, file io.Reader) (*entities.ScreeningBatch, error) {
	if !importer.SupportedExt(filename) {
		return nil, fmt.Errorf("%w: unsupported file type %q, expected .xlsx or .csv",
			ErrValidation, filepath.Ext(filename))
	}

	batchID := uuid.New()
	ext := strings.ToLower(filepath.Ext(filename))
	storedPath := filepath.Join(s.uploadDir, batchID.String()+ext)

	if err := saveUpload(storedPath, file); err != nil {
		return nil, err
	}

	batch := &entities.ScreeningBatch{
		ID:         batchID,
		SourceFile: filepath.Base(filename),
		Status:     entities.BatchStatusPending,
	}
	if err := s.screeningRepo.CreateBatch(ctx, batch); err != nil {
		return nil, err
	}

	job, err := json.Marshal(screeningJob{BatchID: batchID, StoredPath: storedPath})
	if err != nil {
		return nil, fmt.Errorf("marshal screening job: %w", err)
	}
	if err := s.queue.Publish(ctx, ScreeningJobQueue, job); err != nil {
		s.failBatch(ctx, batch, fmt.Sprintf("enqueue: %v", err))
		return nil, fmt.Errorf("enqueue screening job: %w", err)
	}

	s.logger.Info().
		Str("batch_id", batchID.String()).
		Str("source_file", batch.SourceFile).
		Msg("Screening batch submitted")
	return batch, nil
}

func saveUpload(path string, file io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store upload: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return fmt.Errorf("store upload: %w", err)
	}
	return nil
}

// handleJob is the queue consumer callback.
func (s *ScreeningServiceImpl) handleJob(ctx context.Context, data []byte) error {
	var job screeningJob
	if err := json.Unmarshal(data, &job); err != nil {
		return fmt.Errorf("unmarshal screening job: %w", err)
	}
	return s.process(ctx, job)
}

// process parses the stored upload, screens every row, persists the
// results and writes the annotated result file.
func (s *ScreeningServiceImpl) process(ctx context.Context, job screeningJob) error {
	batch, err := s.screeningRepo.GetBatch(ctx, job.BatchID)
	if err != nil {
		return err
	}

	rows, err := importer.Parse(job.StoredPath)
	if err != nil {
		s.failBatch(ctx, batch, err.Error())
		return fmt.Errorf("parse upload for batch %s: %w", batch.ID, err)
	}

	results := make([]*entities.ScreeningResult, len(rows))
	predictions := make([]string, len(rows))
	for i, row := range rows {
		predictions[i] = screening.Predict(screening.Metrics{
			Age:           row.Age,
			BMI:           row.BMI,
			Cholesterol:   row.Cholesterol,
			BloodPressure: row.BloodPressure,
		})
		results[i] = &entities.ScreeningResult{
			BatchID:       batch.ID,
			Name:          row.Name,
			Age:           row.Age,
			BMI:           row.BMI,
			Cholesterol:   row.Cholesterol,
			BloodPressure: row.BloodPressure,
			Prediction:    predictions[i],
		}
	}

	if err := s.screeningRepo.CreateResults(ctx, results); err != nil {
		s.failBatch(ctx, batch, err.Error())
		return err
	}

	resultFile := "results_" + filepath.Base(job.StoredPath)
	if err := importer.WriteResults(filepath.Join(s.resultsDir, resultFile), rows, predictions); err != nil {
		s.failBatch(ctx, batch, err.Error())
		return fmt.Errorf("write result file for batch %s: %w", batch.ID, err)
	}

	batch.Status = entities.BatchStatusCompleted
	batch.RowCount = len(rows)
	batch.ResultFile = resultFile
	if err := s.screeningRepo.UpdateBatch(ctx, batch); err != nil {
		return err
	}

	s.logger.Info().
		Str("batch_id", batch.ID.String()).
		Int("rows", len(rows)).
		Msg("Screening batch completed")
	return nil
}

// failBatch marks a batch failed, keeping the original error for the
// history view.
func (s *ScreeningServiceImpl) failBatch(ctx context.Context, batch *entities.ScreeningBatch, reason string) {
	batch.Status = entities.BatchStatusFailed
	batch.Error = reason
	if err := s.screeningRepo.UpdateBatch(ctx, batch); err != nil {
		s.logger.Error().Err(err).Str("batch_id", batch.ID.String()).Msg("Failed to mark batch as failed")
	}
}

func (s *ScreeningServiceImpl) History(ctx context.Context) ([]*entities.ScreeningBatch, error) {
	return s.screeningRepo.ListBatches(ctx)
}

func (s *ScreeningServiceImpl) BatchSummary(ctx context.Context, id uuid.UUID) (*dtos.BatchSummary, error) {
	batch, err := s.screeningRepo.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}

	predictions, err := s.screeningRepo.Predictions(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dtos.BatchSummary{
		Batch:        batch,
		Distribution: screening.Distribution(predictions),
	}, nil
}

func (s *ScreeningServiceImpl) Results(ctx context.Context, id uuid.UUID, page, perPage int) (*dtos.ResultsPage, error) {
	if _, err := s.screeningRepo.GetBatch(ctx, id); err != nil {
		return nil, err
	}

	page, perPage = clampPage(page, perPage)
	results, total, err := s.screeningRepo.ListResults(ctx, id, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &dtos.ResultsPage{
		Results:    results,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *ScreeningServiceImpl) ResultFilePath(ctx context.Context, id uuid.UUID) (string, error) {
	batch, err := s.screeningRepo.GetBatch(ctx, id)
	if err != nil {
		return "", err
	}
	if batch.Status != entities.BatchStatusCompleted {
		return "", fmt.Errorf("%w: batch %s is %s", ErrNotReady, batch.ID, batch.Status)
	}
	return filepath.Join(s.resultsDir, batch.ResultFile), nil
}

// Compile-time check.
var _ ScreeningService = (*ScreeningServiceImpl)(nil)
