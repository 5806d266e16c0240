package services

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"patient-data-service/internal/domain/dtos"
	"patient-data-service/internal/domain/entities"
)

// ErrNotReady is returned when a batch's result file is requested
// before processing has completed.
var ErrNotReady = errors.New("screening batch not completed")

// ScreeningService exposes the upload-and-screen pipeline to the API
// layer. Uploads are processed asynchronously through a queue.
type ScreeningService interface {
	// Start begins consuming screening jobs.
	Start(ctx context.Context) error
	// Stop shuts down the job consumer.
	Stop(ctx context.Context) error

	// Submit stores an uploaded spreadsheet, records a pending batch
	// and enqueues it for processing.
	Submit(ctx context.Context, filename string, file io.Reader) (*entities.ScreeningBatch, error)
	// History returns all recorded batches, newest first.
	History(ctx context.Context) ([]*entities.ScreeningBatch, error)
	// BatchSummary returns a batch with its condition distribution.
	BatchSummary(ctx context.Context, id uuid.UUID) (*dtos.BatchSummary, error)
	// Results returns one page of a batch's screened rows.
	Results(ctx context.Context, id uuid.UUID, page, perPage int) (*dtos.ResultsPage, error)
	// ResultFilePath returns the path of a completed batch's annotated
	// result file.
	ResultFilePath(ctx context.Context, id uuid.UUID) (string, error)
}
