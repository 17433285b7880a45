package middleware

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type contextKey string

const ContextKeyUserID = contextKey("userID")

// UserResolver exchanges a verified identity-provider subject for the
// local user row, creating it on first sight.
type UserResolver interface {
	ResolveExternalUID(ctx context.Context, externalUID, email string) (*models.User, error)
}

// AuthMiddleware – for protected endpoints. The client presents the
// identity provider's RS256 token as Authorization: Bearer ...; the
// middleware verifies signature, expiry, and issuer against the
// configured provider key, then resolves the subject to a local user
// and stores that user's ID on the request context.
func AuthMiddleware(pub *rsa.PublicKey, issuer string, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractBearerToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			tok, vErr := validateToken(tokenStr, pub, issuer)
			if vErr != nil || !tok.Valid {
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
				)
				return
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid claims", nil,
				)
				return
			}
			sub, ok := claims["sub"].(string)
			if !ok || sub == "" {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing subject", nil,
				)
				return
			}
			email, _ := claims["email"].(string)

			user, rErr := resolver.ResolveExternalUID(r.Context(), sub, email)
			if rErr != nil {
				utils.Logger.WithError(rErr).Error("Failed to resolve user for token subject")
				utils.RespondErrorWithCode(
					w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to resolve user", nil, rErr,
				)
				return
			}
			if !user.IsActive {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Account disabled", nil,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user's ID placed on the
// context by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(uuid.UUID)
	return id, ok
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("malformed Authorization header")
	}
	return strings.TrimPrefix(header, prefix), nil
}

func validateToken(tokenStr string, pub *rsa.PublicKey, issuer string) (*jwt.Token, error) {
	return jwt.Parse(
		tokenStr,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return pub, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
}
