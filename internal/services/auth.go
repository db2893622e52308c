package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/animalloo/animalloo-backend/internal/platform/ctxutil"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

// AuthService verifies access tokens issued by the account service. It does
// not issue tokens itself.
type AuthService interface {
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	log          *logger.Logger
	jwtSecretKey string
}

func NewAuthService(log *logger.Logger, jwtSecretKey string) AuthService {
	return &authService{log: log.With("service", "AuthService"), jwtSecretKey: jwtSecretKey}
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, ErrUnauthorized
	}
	claims := &jwt.RegisteredClaims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ctx, fmt.Errorf("%w: failed to parse token: %v", ErrUnauthorized, err)
	}
	if !parsedToken.Valid {
		return ctx, fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	}
	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return ctx, fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		rd = &ctxutil.RequestData{}
	}
	next := *rd
	next.UserID = subject
	return ctxutil.WithRequestData(ctx, &next), nil
}
