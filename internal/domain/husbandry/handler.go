package husbandry

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"reptile-husbandry/internal/authz"
	"reptile-husbandry/internal/domain/reptiles"
	"reptile-husbandry/internal/middleware"
	"reptile-husbandry/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, reptilesSvc *reptiles.Service) {
	r.Route("/reptiles/{reptileID}/husbandry-records", func(hr chi.Router) {
		hr.Get("/", listRecordsHandler(svc, reptilesSvc))
		hr.Post("/", createRecordHandler(svc, reptilesSvc))
	})
}

type createRecordRequest struct {
	Length      float64 `json:"length"`
	Weight      float64 `json:"weight"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

type recordResponse struct {
	ID          int64     `json:"id"`
	ReptileID   int64     `json:"reptileId"`
	Length      float64   `json:"length"`
	Weight      float64   `json:"weight"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	CreatedAt   time.Time `json:"createdAt"`
}

func listRecordsHandler(svc *Service, reptilesSvc *reptiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		rp, err := authz.AuthorizeParent(r.Context(), claims.UserID, chi.URLParam(r, "reptileID"), reptilesSvc.GetByID)
		if err != nil {
			writeAuthzError(w, err)
			return
		}

		items, err := svc.ListByReptile(r.Context(), rp.ID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createRecordHandler(svc *Service, reptilesSvc *reptiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		rp, err := authz.AuthorizeParent(r.Context(), claims.UserID, chi.URLParam(r, "reptileID"), reptilesSvc.GetByID)
		if err != nil {
			writeAuthzError(w, err)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		rec, err := svc.Create(r.Context(), rp.ID, CreateInput{
			Length:      req.Length,
			Weight:      req.Weight,
			Temperature: req.Temperature,
			Humidity:    req.Humidity,
		})
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]recordResponse{"husbandryRecord": toRecordResponse(rec)})
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:          rec.ID,
		ReptileID:   rec.ReptileID,
		Length:      rec.Length,
		Weight:      rec.Weight,
		Temperature: rec.Temperature,
		Humidity:    rec.Humidity,
		CreatedAt:   rec.CreatedAt,
	}
}

func writeAuthzError(w http.ResponseWriter, err error) {
	if errors.Is(err, authz.ErrInvalidID) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid Reptile Id")
		return
	}
	httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
}
