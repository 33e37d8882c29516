package middleware

import (
	"strings"
	"time"

	"CareSphere/models"
	"CareSphere/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextAccountID = "accountId"
	ContextRole      = "role"
	ContextEmail     = "email"
)

type Claims struct {
	AccountID string `json:"accountId"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func IssueToken(secret string, ttl time.Duration, account *models.Account) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: account.ID.Hex(),
		Role:      account.Role,
		Email:     account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, utils.Unauthorized("invalid or expired token")
	}
	return claims, nil
}

/*
* Verify the bearer token and put the claims into the context
* Role checks downstream read only these verified values, never the request
* body or query string
 */
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			err := utils.Unauthorized("missing bearer token")
			c.AbortWithStatusJSON(err.Status, utils.FailedResponse(err))
			return
		}
		claims, err := ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(utils.StatusOf(err), utils.FailedResponse(err))
			return
		}
		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		err := utils.Forbidden("insufficient privileges")
		c.AbortWithStatusJSON(err.Status, utils.FailedResponse(err))
	}
}
