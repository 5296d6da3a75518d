package port

import "github.com/MikeRez0/dropshop/internal/core/domain"

type TokenPayload struct {
	UserID int64
	Role   domain.Role
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
