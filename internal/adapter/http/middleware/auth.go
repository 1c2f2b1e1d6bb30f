package middleware

import (
	"errors"
	"net/http"
	"strings"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase"
	"pandit_booking/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidRole  = errors.New("token carries an unknown role")
)

// Claims is the token payload issued by the identity service.
// UserID falls back to the standard "sub" claim when absent.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate verifies an HS256 bearer token and stores the caller's Principal.
func Authenticate(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return func(c *gin.Context) {
		p, err := principalFromHeader(parser, key, c.GetHeader("Authorization"))
		if err != nil {
			appErr := pkg.NewDomainError("UNAUTHORIZED", "invalid or missing credentials", err, http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

func principalFromHeader(parser *jwt.Parser, key []byte, header string) (usecase.Principal, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return usecase.Principal{}, ErrMissingToken
	}

	claims := &Claims{}
	if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}); err != nil {
		return usecase.Principal{}, err
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	role := entities.UserRole(strings.ToLower(claims.Role))
	if userID == "" {
		return usecase.Principal{}, jwt.ErrTokenInvalidClaims
	}
	if !role.IsValid() {
		return usecase.Principal{}, ErrInvalidRole
	}
	return usecase.Principal{UserID: userID, Role: role}, nil
}

// RequireRole rejects authenticated callers whose role is not listed.
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := usecase.RequireRole(CurrentPrincipal(c), roles...); err != nil {
			appErr := pkg.NewDomainError("FORBIDDEN", err.Error(), err, http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the caller set by Authenticate, or the zero Principal.
func CurrentPrincipal(c *gin.Context) usecase.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(usecase.Principal); ok {
			return p
		}
	}
	return usecase.Principal{}
}
