package users

import (
	"encoding/json"
	"net/http"
	"time"

	"reptile-husbandry/internal/platform/httpx"
	"reptile-husbandry/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, issuer auth.TokenIssuer) {
	r.Post("/users", signupHandler(svc))
	r.Get("/users", listUsersHandler(svc))

	r.Post("/sessions", createSessionHandler(svc, issuer))
}

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse serializa el usuario tal cual lo hacía la API original,
// passwordHash incluido (compatibilidad; ver DESIGN.md).
type userResponse struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

// signupHandler godoc
// @Summary Registrar usuario
// @Description Crea una cuenta nueva. El password se guarda hasheado con bcrypt.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body signupRequest true "Datos de la cuenta"
// @Success 200 {object} map[string]userResponse
// @Failure 400 {object} map[string]string "invalid json / Invalid input / Email already in use"
// @Router /users [post]
func signupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Signup(r.Context(), SignupInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
			case ErrEmailTaken:
				httpx.WriteError(w, http.StatusBadRequest, "Email already in use")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]userResponse{"user": toUserResponse(u)})
	}
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	// Sin auth, como la API original.
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}

		httpx.WriteJSON(w, http.StatusOK, map[string][]userResponse{"users": out})
	}
}

// createSessionHandler godoc
// @Summary Iniciar sesión
// @Description Verifica email+password y emite un token HMAC de 10 minutos con payload {userId}. Email inexistente y password incorrecto responden el mismo 404.
// @Tags sessions
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} map[string]string "invalid json"
// @Failure 404 {object} map[string]string "Invalid email or password"
// @Router /sessions [post]
func createSessionHandler(svc *Service, issuer auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, "Invalid email or password")
			return
		}

		token, err := issuer.Issue(r.Context(), u.ID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, sessionResponse{
			User:  toUserResponse(u),
			Token: token,
		})
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
