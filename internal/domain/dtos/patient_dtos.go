package dtos

import "patient-data-service/internal/domain/entities"

// CreatePatientRequest defines the payload for creating a new patient.
// Both fields are optional; the id is assigned by storage.
type CreatePatientRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// UpdatePatientRequest defines the payload for updating a patient.
// The id comes from the URL and is never changed.
type UpdatePatientRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// PatientPage is one page of patient records.
type PatientPage struct {
	Patients []*entities.Patient `json:"patients"`
	Page     int                 `json:"page"`
	PerPage  int                 `json:"per_page"`
	Total    int64               `json:"total"`
}
