package reptiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"reptile-husbandry/internal/authz"
	"reptile-husbandry/internal/domain/users"
	"reptile-husbandry/internal/middleware"
	"reptile-husbandry/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, usersSvc *users.Service) {
	r.Route("/reptiles", func(rr chi.Router) {
		rr.Get("/", listReptilesHandler(svc, usersSvc))
		rr.Post("/", createReptileHandler(svc))

		rr.Get("/{reptileID}", getReptileHandler(svc))
		// Update por POST, igual que la API original.
		rr.Post("/{reptileID}", updateReptileHandler(svc))
		rr.Delete("/{reptileID}", deleteReptileHandler(svc))
	})
}

type reptileRequest struct {
	Species string `json:"species"`
	Name    string `json:"name"`
	Sex     string `json:"sex"`
}

type reptileResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Species   Species   `json:"species"`
	Name      string    `json:"name"`
	Sex       Sex       `json:"sex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func listReptilesHandler(svc *Service, usersSvc *users.Service) http.HandlerFunc {
	// Lista plana, solo reptiles del usuario autenticado.
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

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]reptileResponse, 0, len(items))
		for _, rp := range items {
			out = append(out, toReptileResponse(rp))
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createReptileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.UserID <= 0 {
			httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req reptileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if !authz.OneOf(Species(req.Species), AllSpecies...) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid species")
			return
		}
		if !authz.OneOf(Sex(req.Sex), AllSexes...) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid sex")
			return
		}

		rp, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Species: Species(req.Species),
			Name:    req.Name,
			Sex:     Sex(req.Sex),
		})
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]reptileResponse{"reptile": toReptileResponse(rp)})
	}
}

func getReptileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		rp, err := authz.AuthorizeParent(r.Context(), claims.UserID, chi.URLParam(r, "reptileID"), svc.GetByID)
		if err != nil {
			writeAuthzError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]reptileResponse{"reptile": toReptileResponse(rp)})
	}
}

func updateReptileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		current, err := authz.AuthorizeParent(r.Context(), claims.UserID, chi.URLParam(r, "reptileID"), svc.GetByID)
		if err != nil {
			writeAuthzError(w, err)
			return
		}

		var req reptileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		// A diferencia del origen, acá se corta en la primera validación
		// fallida; un species inválido nunca llega al update.
		if !authz.OneOf(Species(req.Species), AllSpecies...) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid species")
			return
		}
		if !authz.OneOf(Sex(req.Sex), AllSexes...) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid sex")
			return
		}

		updated, err := svc.Update(r.Context(), current, CreateInput{
			Species: Species(req.Species),
			Name:    req.Name,
			Sex:     Sex(req.Sex),
		})
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]reptileResponse{"reptile": toReptileResponse(updated)})
	}
}

func deleteReptileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		rp, err := authz.AuthorizeParent(r.Context(), claims.UserID, chi.URLParam(r, "reptileID"), svc.GetByID)
		if err != nil {
			writeAuthzError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), rp.ID); err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Reptile successfully deleted"})
	}
}

func toReptileResponse(rp Reptile) reptileResponse {
	return reptileResponse{
		ID:        rp.ID,
		UserID:    rp.OwnerUserID,
		Species:   rp.Species,
		Name:      rp.Name,
		Sex:       rp.Sex,
		CreatedAt: rp.CreatedAt,
		UpdatedAt: rp.UpdatedAt,
	}
}

func writeAuthzError(w http.ResponseWriter, err error) {
	if errors.Is(err, authz.ErrInvalidID) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid Reptile Id")
		return
	}
	httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
}
