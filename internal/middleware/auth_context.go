package middleware

import (
	"context"
	"net/http"
	"strings"

	"reptile-husbandry/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// CookieName es el nombre de la cookie de sesión aceptada como
// alternativa al header Authorization.
const CookieName = "token"

// AuthContext:
// - Extrae el token del header "Authorization: Bearer ..." o, si no viene,
//   de la cookie "token".
// - Si verifica, setea claims en el contexto.
// - Si no hay token o no verifica, el request sigue igual; los handlers
//   (vía la policy de ownership) responden 401. Así "sin token" y
//   "recurso ajeno" son indistinguibles para el cliente.
func AuthContext(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				if c, err := r.Cookie(CookieName); err == nil {
					token = strings.TrimSpace(c.Value)
				}
			}
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
