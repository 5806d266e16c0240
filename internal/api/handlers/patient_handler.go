package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"patient-data-service/internal/domain/dtos"
	"patient-data-service/internal/services"
)

// PatientHandler serves the /api/patients endpoints.
type PatientHandler struct {
	patientService services.PatientService
	logger         zerolog.Logger
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(svc services.PatientService, logger zerolog.Logger) *PatientHandler {
	return &PatientHandler{
		patientService: svc,
		logger:         logger,
	}
}

// Routes mounts the patient endpoints on the given router.
func (h *PatientHandler) Routes(r chi.Router) {
	r.Get("/patients", h.List)
	r.Post("/patients", h.Create)
	r.Get("/patients/{id}", h.Get)
	r.Put("/patients/{id}", h.Update)
	r.Delete("/patients/{id}", h.Delete)
}

// List returns patient records. Without query parameters it returns
// every stored record; with ?page= it returns one page.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("page") == "" && q.Get("per_page") == "" {
		patients, err := h.patientService.ListAll(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, patients)
		return
	}

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	result, err := h.patientService.List(r.Context(), page, perPage)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	patient, err := h.patientService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, patient)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	patient, err := h.patientService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	patient, err := h.patientService.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := patientID(w, r)
	if !ok {
		return
	}

	if err := h.patientService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// patientID parses the {id} URL parameter, writing a 400 on failure.
func patientID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid patient id")
		return 0, false
	}
	return id, true
}
