package usecase

import (
	"storefront-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator authenticates a session token and reports whether the
// shopper holds membership, which gates member-only coupons.
type TokenValidator interface {
	ValidateToken(token string) (userID uuid.UUID, member bool, err error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, bool, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, false, err
	}
	return claims.UserID, claims.Member, nil
}
