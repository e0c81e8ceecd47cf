package practices

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
	r.Route("/practices", func(pr chi.Router) {
		pr.Get("/", listPracticesHandler(svc))
		pr.Post("/", createPracticeHandler(svc))
		pr.Get("/stats", practiceStatsHandler(svc))

		// Colección completa en cada cambio (SSE)
		pr.Get("/stream", func(w http.ResponseWriter, r *http.Request) {
			sse.Stream(w, r, svc.Store(), log)
		})

		pr.Get("/{practiceID}", getPracticeHandler(svc))
	})
}

type createPracticeRequest struct {
	Name           string `json:"name"`
	CompanyName    string `json:"companyName"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	TaxID          string `json:"taxID"`
	OpeningHours   string `json:"openingHours"`
	DeliveryMethod string `json:"deliveryMethod"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func listPracticesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items := svc.List(Filter{
			Query:  q.Get("q"),
			Status: q.Get("status"),
		})
		writeJSON(w, http.StatusOK, items)
	}
}

func practiceStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Stats())
	}
}

func getPracticeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "practiceID"))
		if err != nil {
			http.Error(w, "practiceID must be a number", http.StatusBadRequest)
			return
		}
		p, err := svc.GetByID(id)
		if err != nil {
			http.Error(w, "practice not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func createPracticeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPracticeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.CreateAndWait(r.Context(), CreateInput{
			Name:           req.Name,
			CompanyName:    req.CompanyName,
			Address:        req.Address,
			Phone:          req.Phone,
			Email:          req.Email,
			TaxID:          req.TaxID,
			OpeningHours:   req.OpeningHours,
			DeliveryMethod: req.DeliveryMethod,
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

// writeJSON duplicado por módulo, igual que en doctors/patients.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
