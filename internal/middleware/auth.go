package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const RoleAdmin = "admin"

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth accepts HS256 bearer tokens whose role claim is admin.
func AdminAuth(secret string) ginext.HandlerFunc {
	key := []byte(secret)

	return func(c *ginext.Context) {
		claims, err := parseBearer(c.GetHeader("Authorization"), key)
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{
				"success": false,
				"error":   domain.ErrUnauthorized.Error(),
			})
			return
		}

		c.Set("admin_subject", claims.Subject)
		c.Next()
	}
}

func parseBearer(header string, key []byte) (*Claims, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: auth not configured", domain.ErrUnauthorized)
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	if claims.Role != RoleAdmin {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrUnauthorized)
	}

	return claims, nil
}

// IssueAdminToken signs an admin token for subject valid for ttl.
func IssueAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("empty signing secret")
	}

	now := time.Now()
	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
