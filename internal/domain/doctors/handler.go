package doctors

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
	r.Route("/doctors", func(dr chi.Router) {
		dr.Get("/", listDoctorsHandler(svc))
		dr.Post("/", createDoctorHandler(svc))
		dr.Get("/stats", doctorStatsHandler(svc))

		// Colección completa en cada cambio (SSE)
		dr.Get("/stream", func(w http.ResponseWriter, r *http.Request) {
			sse.Stream(w, r, svc.Store(), log)
		})

		dr.Get("/{doctorID}", getDoctorHandler(svc))
	})
}

type createDoctorRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func listDoctorsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items := svc.List(Filter{
			Query:     q.Get("q"),
			Practice:  q.Get("practice"),
			Specialty: q.Get("specialty"),
		})
		writeJSON(w, http.StatusOK, items)
	}
}

func doctorStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Stats())
	}
}

func getDoctorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "doctorID"))
		if err != nil {
			http.Error(w, "doctorID must be a number", http.StatusBadRequest)
			return
		}
		d, err := svc.GetByID(id)
		if err != nil {
			http.Error(w, "doctor not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

func createDoctorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDoctorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// La respuesta llega después de la latencia simulada; la validación es inmediata.
		d, err := svc.CreateAndWait(r.Context(), CreateInput{
			FullName: req.FullName,
			Username: req.Username,
			Email:    req.Email,
			Phone:    req.Phone,
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

		writeJSON(w, http.StatusCreated, d)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
