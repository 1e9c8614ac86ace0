package auth

import "context"

// TokenVerifier verifica un token y devuelve claims o error.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token firmado para un usuario.
// La expiración la decide la implementación (fija, 10 minutos en prod).
type TokenIssuer interface {
	Issue(ctx context.Context, userID int64) (string, error)
}
