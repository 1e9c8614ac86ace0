package feedings

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
	r.Route("/reptiles/{reptileID}/feedings", func(fr chi.Router) {
		fr.Get("/", listFeedingsHandler(svc, reptilesSvc))
		fr.Post("/", createFeedingHandler(svc, reptilesSvc))
	})
}

type createFeedingRequest struct {
	FoodItem string `json:"foodItem"`
}

type feedingResponse struct {
	ID        int64     `json:"id"`
	ReptileID int64     `json:"reptileId"`
	FoodItem  string    `json:"foodItem"`
	CreatedAt time.Time `json:"createdAt"`
}

func listFeedingsHandler(svc *Service, reptilesSvc *reptiles.Service) http.HandlerFunc {
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

		out := make([]feedingResponse, 0, len(items))
		for _, f := range items {
			out = append(out, toFeedingResponse(f))
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createFeedingHandler(svc *Service, reptilesSvc *reptiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		rp, err := authz.AuthorizeParent(r.Context(), claims.UserID, chi.URLParam(r, "reptileID"), reptilesSvc.GetByID)
		if err != nil {
			writeAuthzError(w, err)
			return
		}

		var req createFeedingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		f, err := svc.Create(r.Context(), rp.ID, req.FoodItem)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]feedingResponse{"feeding": toFeedingResponse(f)})
	}
}

func toFeedingResponse(f Feeding) feedingResponse {
	return feedingResponse{
		ID:        f.ID,
		ReptileID: f.ReptileID,
		FoodItem:  f.FoodItem,
		CreatedAt: f.CreatedAt,
	}
}

func writeAuthzError(w http.ResponseWriter, err error) {
	if errors.Is(err, authz.ErrInvalidID) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid Reptile Id")
		return
	}
	httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
}
