package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/jwt"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const ActorKey contextKey = "actor"

// TokenChecker reports whether an access token is still live.
type TokenChecker interface {
	IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
}

type AuthMiddleware struct {
	jwtService      *jwt.JWTService
	tokens          TokenChecker
	checkRevocation bool
	log             *logrus.Logger
}

// NewAuthMiddleware builds the bearer token middleware. When checkRevocation is
// set every token must also be live in tokens.
func NewAuthMiddleware(jwtService *jwt.JWTService, tokens TokenChecker, checkRevocation bool, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:      jwtService,
		tokens:          tokens,
		checkRevocation: checkRevocation,
		log:             log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		// Validate JWT token
		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check if it's an access token
		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		if m.checkRevocation {
			active, err := m.tokens.IsActive(r.Context(), claims.UserID, claims.TokenID)
			if err != nil {
				m.log.Warnf("Failed to check access token: %+v", err)
				response.InternalServerError(w, "Failed to validate token")
				return
			}
			if !active {
				response.Unauthorized(w, "Token has been revoked")
				return
			}
		}

		actor := &entity.Actor{
			UserID: claims.UserID,
			Email:  claims.Email,
			RoleID: claims.RoleID,
		}
		ctx := context.WithValue(r.Context(), ActorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActorFromContext extracts the authenticated actor from context
func GetActorFromContext(ctx context.Context) (*entity.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(*entity.Actor)
	return actor, ok
}
