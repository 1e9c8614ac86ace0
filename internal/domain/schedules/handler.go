package schedules

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"reptile-husbandry/internal/authz"
	"reptile-husbandry/internal/domain/reptiles"
	"reptile-husbandry/internal/domain/users"
	"reptile-husbandry/internal/middleware"
	"reptile-husbandry/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, reptilesSvc *reptiles.Service, usersSvc *users.Service) {
	// Todos los schedules creados por el usuario autenticado,
	// sin importar de qué reptil.
	r.Get("/schedules", listSchedulesForUserHandler(svc, usersSvc))

	r.Route("/reptiles/{reptileID}/schedules", func(sr chi.Router) {
		sr.Get("/", listSchedulesForReptileHandler(svc, reptilesSvc))
		sr.Post("/", createScheduleHandler(svc, reptilesSvc))
	})
}

type createScheduleRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`

	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

type scheduleResponse struct {
	ID          int64     `json:"id"`
	ReptileID   int64     `json:"reptileId"`
	UserID      int64     `json:"userId"`
	Type        Type      `json:"type"`
	Description string    `json:"description"`
	Monday      bool      `json:"monday"`
	Tuesday     bool      `json:"tuesday"`
	Wednesday   bool      `json:"wednesday"`
	Thursday    bool      `json:"thursday"`
	Friday      bool      `json:"friday"`
	Saturday    bool      `json:"saturday"`
	Sunday      bool      `json:"sunday"`
	CreatedAt   time.Time `json:"createdAt"`
}

func listSchedulesForUserHandler(svc *Service, usersSvc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.UserID <= 0 {
			httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if _, err := usersSvc.GetByID(r.Context(), claims.UserID); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid user")
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toScheduleResponses(items))
	}
}

func listSchedulesForReptileHandler(svc *Service, reptilesSvc *reptiles.Service) http.HandlerFunc {
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

		httpx.WriteJSON(w, http.StatusOK, toScheduleResponses(items))
	}
}

func createScheduleHandler(svc *Service, reptilesSvc *reptiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		rp, err := authz.AuthorizeParent(r.Context(), claims.UserID, chi.URLParam(r, "reptileID"), reptilesSvc.GetByID)
		if err != nil {
			writeAuthzError(w, err)
			return
		}

		var req createScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if !authz.OneOf(Type(req.Type), AllTypes...) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid schedule type")
			return
		}

		sc, err := svc.Create(r.Context(), rp.ID, claims.UserID, CreateInput{
			Type:        Type(req.Type),
			Description: req.Description,
			Monday:      req.Monday,
			Tuesday:     req.Tuesday,
			Wednesday:   req.Wednesday,
			Thursday:    req.Thursday,
			Friday:      req.Friday,
			Saturday:    req.Saturday,
			Sunday:      req.Sunday,
		})
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]scheduleResponse{"schedule": toScheduleResponse(sc)})
	}
}

func toScheduleResponse(sc Schedule) scheduleResponse {
	return scheduleResponse{
		ID:          sc.ID,
		ReptileID:   sc.ReptileID,
		UserID:      sc.UserID,
		Type:        sc.Type,
		Description: sc.Description,
		Monday:      sc.Monday,
		Tuesday:     sc.Tuesday,
		Wednesday:   sc.Wednesday,
		Thursday:    sc.Thursday,
		Friday:      sc.Friday,
		Saturday:    sc.Saturday,
		Sunday:      sc.Sunday,
		CreatedAt:   sc.CreatedAt,
	}
}

func toScheduleResponses(items []Schedule) []scheduleResponse {
	out := make([]scheduleResponse, 0, len(items))
	for _, sc := range items {
		out = append(out, toScheduleResponse(sc))
	}
	return out
}

func writeAuthzError(w http.ResponseWriter, err error) {
	if errors.Is(err, authz.ErrInvalidID) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid Reptile Id")
		return
	}
	httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
}
