package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"patient-data-service/internal/services"
)

// uploadFormField is the multipart form field carrying the spreadsheet.
const uploadFormField = "file"

// maxUploadMemory is the in-memory buffer for multipart parsing; larger
// uploads spill to temp files.
const maxUploadMemory = 8 << 20

// ScreeningHandler serves the /api/screenings endpoints.
type ScreeningHandler struct {
	screeningService services.ScreeningService
	logger           zerolog.Logger
}

// NewScreeningHandler creates a new ScreeningHandler.
func NewScreeningHandler(svc services.ScreeningService, logger zerolog.Logger) *ScreeningHandler {
	return &ScreeningHandler{
		screeningService: svc,
		logger:           logger,
	}
}

// Routes mounts the screening endpoints on the given router.
func (h *ScreeningHandler) Routes(r chi.Router) {
	r.Post("/screenings", h.Submit)
	r.Get("/screenings", h.History)
	r.Get("/screenings/{id}", h.Batch)
	r.Get("/screenings/{id}/results", h.Results)
	r.Get("/screenings/{id}/download", h.Download)
}

// Submit accepts a multipart spreadsheet upload and enqueues it for
// screening. Responds 202 with the pending batch.
func (h *ScreeningHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	batch, err := h.screeningService.Submit(r.Context(), header.Filename, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, batch)
}

// History returns all recorded batches, newest first.
func (h *ScreeningHandler) History(w http.ResponseWriter, r *http.Request) {
	batches, err := h.screeningService.History(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batches)
}

// Batch returns one batch with its condition distribution.
func (h *ScreeningHandler) Batch(w http.ResponseWriter, r *http.Request) {
	id, ok := batchID(w, r)
	if !ok {
		return
	}

	summary, err := h.screeningService.BatchSummary(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Results returns one page of a batch's screened rows.
func (h *ScreeningHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, ok := batchID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	results, err := h.screeningService.Results(r.Context(), id, page, perPage)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Download streams the annotated result file of a completed batch.
func (h *ScreeningHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := batchID(w, r)
	if !ok {
		return
	}

	path, err := h.screeningService.ResultFilePath(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", "attachment")
	http.ServeFile(w, r, path)
}

// batchID parses the {id} URL parameter as a uuid, writing a 400 on
// failure.
func batchID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid batch id")
		return uuid.Nil, false
	}
	return id, true
}
