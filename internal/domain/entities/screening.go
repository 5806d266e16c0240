package entities

import (
	"time"

	"github.com/google/uuid"
)

// Screening batch statuses.
const (
	BatchStatusPending   = "pending"
	BatchStatusCompleted = "completed"
	BatchStatusFailed    = "failed"
)

// ScreeningBatch records one uploaded spreadsheet run through the
// condition screen. It doubles as the run history.
type ScreeningBatch struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	SourceFile string    `json:"source_file" db:"source_file" gorm:"not null"`
	ResultFile string    `json:"result_file" db:"result_file"`
	RowCount   int       `json:"row_count" db:"row_count"`
	Status     string    `json:"status" db:"status" gorm:"not null;default:'pending';index"`
	Error      string    `json:"error,omitempty" db:"error"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" gorm:"not null;index"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

// TableName overrides the default GORM table name.
func (ScreeningBatch) TableName() string { return "screening_batches" }

// ScreeningResult is one evaluated spreadsheet row, stored with the
// metrics that were screened and the resulting prediction.
type ScreeningResult struct {
	ID            int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	BatchID       uuid.UUID `json:"batch_id" db:"batch_id" gorm:"type:uuid;not null;index"`
	Name          string    `json:"name" db:"name"`
	Age           int       `json:"age" db:"age"`
	BMI           float64   `json:"bmi" db:"bmi"`
	Cholesterol   float64   `json:"cholesterol" db:"cholesterol"`
	BloodPressure float64   `json:"blood_pressure" db:"blood_pressure"`
	Prediction    string    `json:"prediction" db:"prediction" gorm:"not null"`
}

// TableName overrides the default GORM table name.
func (ScreeningResult) TableName() string { return "screening_results" }
