package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"poseidon/internal/authz"
	"poseidon/internal/config"
	apperrors "poseidon/internal/errors"
	"poseidon/internal/models"
)

const (
	actorKey  = "actor"
	issuer    = "poseidon-api"
	tokenType = "access"
)

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken generates a JWT access token for a user.
func GenerateAccessToken(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(config.Get().JWTExpirationDur)
	claims := &JWTClaims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(getJWTKey())
	return signed, expires, err
}

// ParseAccessToken validates tokenString and returns its claims.
func ParseAccessToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	}, jwt.WithIssuer(issuer))

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}
	if claims.TokenType != tokenType || claims.Username == "" {
		return nil, fmt.Errorf("token is not an access token")
	}
	return claims, nil
}

// AuthMiddleware verifies the JWT token and sets the actor in the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := ParseAccessToken(parts[1])
		if err != nil {
			abort(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		var roles []string
		if claims.Role != "" {
			roles = []string{claims.Role}
		}
		SetActor(c, authz.Actor{Username: claims.Username, Roles: roles})
		c.Set("userID", claims.UserID)
		c.Next()
	}
}

// RequireRole rejects actors that were not granted role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abort(c, apperrors.ErrUnauthorized)
			return
		}
		if !actor.HasRole(role) {
			abort(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// SetActor stores the authenticated actor on the request context.
func SetActor(c *gin.Context, actor authz.Actor) {
	c.Set(actorKey, actor)
}

// ActorFrom returns the authenticated actor, if any.
func ActorFrom(c *gin.Context) (authz.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return authz.Actor{}, false
	}
	actor, ok := v.(authz.Actor)
	return actor, ok
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
