package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const subjectKey = "subject"

var errMissingToken = errors.New("missing bearer token")

// Auth accepts HS256 tokens signed with secret. An empty secret disables the
// check.
func Auth(secret string) ginext.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *ginext.Context) {
		if len(key) == 0 {
			c.Next()
			return
		}

		claims, err := parseBearer(parser, key, c.GetHeader("Authorization"))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}

		sub, _ := claims.GetSubject()
		c.Set(subjectKey, sub)
		c.Next()
	}
}

func parseBearer(parser *jwt.Parser, key []byte, header string) (jwt.Claims, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return nil, errMissingToken
	}

	var claims jwt.RegisteredClaims
	if _, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return key, nil
	}); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}

// IssueToken signs an HS256 token for sub.
func IssueToken(secret, sub string, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = sub
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
