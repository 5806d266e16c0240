package dtos

import "patient-data-service/internal/domain/entities"

// BatchSummary is a screening batch together with its condition
// distribution.
type BatchSummary struct {
	Batch        *entities.ScreeningBatch `json:"batch"`
	Distribution map[string]int           `json:"distribution"`
}

// ResultsPage is one page of a batch's screening results.
type ResultsPage struct {
	Results    []*entities.ScreeningResult `json:"results"`
	Page       int                         `json:"page"`
	PerPage    int                         `json:"per_page"`
	Total      int64                       `json:"total"`
	TotalPages int                         `json:"total_pages"`
}
