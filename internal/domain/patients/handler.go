package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dental-lab/internal/platform/logger"
	"dental-lab/internal/platform/sse"
	"dental-lab/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(svc))
		pr.Post("/", createPatientHandler(svc))
		pr.Get("/stats", patientStatsHandler(svc))

		// Colección completa en cada cambio (SSE)
		pr.Get("/stream", func(w http.ResponseWriter, r *http.Request) {
			sse.Stream(w, r, svc.Store(), log)
		})

		pr.Get("/{patientID}", getPatientHandler(svc))
	})
}

type createPatientRequest struct {
	Name                  string `json:"name"`
	BirthDate             string `json:"birthDate"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	ShadeID               string `json:"shadeID"`
	HealthInsuranceNumber string `json:"healthInsuranceNumber"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items := svc.List(Filter{
			Query:  q.Get("q"),
			Status: CaseStatus(q.Get("status")),
		})
		writeJSON(w, http.StatusOK, items)
	}
}

func patientStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Stats())
	}
}

func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "patientID"))
		if err != nil {
			http.Error(w, "patientID must be a number", http.StatusBadRequest)
			return
		}
		p, err := svc.GetByID(id)
		if err != nil {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.CreateAndWait(r.Context(), CreateInput{
			Name:                  req.Name,
			BirthDate:             req.BirthDate,
			Phone:                 req.Phone,
			Email:                 req.Email,
			ShadeID:               req.ShadeID,
			HealthInsuranceNumber: req.HealthInsuranceNumber,
		})
		if err != nil {
			var fe *validate.FieldError
			switch {
			case errors.As(err, &fe):
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: fe.Error(), Field: fe.Field})
			case r.Context().Err() != nil:
				// cliente se fue; no hay a quién responder
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, p)
	}
}

// writeJSON duplicado por módulo, igual que en doctors/practices.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
