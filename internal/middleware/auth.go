package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errMissingHeader   = errors.New("Authorization header required")
	errMalformedBearer = errors.New("Authorization header format must be Bearer {token}")
	errMissingSubject  = errors.New("Invalid token claims")
)

// bearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingHeader
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" || strings.Contains(token, " ") {
		return "", errMalformedBearer
	}
	return token, nil
}

// tokenSubject validates an HS256 token and returns its subject, the acting user id.
func tokenSubject(tokenString, jwtSecret string, opts []jwt.ParserOption) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	}, opts...)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errMissingSubject
	}
	return claims.Subject, nil
}

// tokenErrorMessage is the client-facing text for a rejected token.
func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, errMissingHeader), errors.Is(err, errMalformedBearer), errors.Is(err, errMissingSubject):
		return err.Error()
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "Token not valid yet"
	default:
		return "Invalid token"
	}
}

// AuthMiddleware creates a Gin middleware handler that validates HS256 JWT tokens.
// Tokens are issued elsewhere; only the subject is used, as the acting user id.
// Extra parser options (for example jwt.WithIssuer) are applied on top of HS256 enforcement.
func AuthMiddleware(jwtSecret string, parserOptions ...jwt.ParserOption) gin.HandlerFunc {
	opts := append([]jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}, parserOptions...)

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, err := bearerToken(c.GetHeader("Authorization"))
		if err == nil {
			var userID string
			if userID, err = tokenSubject(tokenString, jwtSecret, opts); err == nil {
				// Carry the user and a user-scoped logger on the request context
				ctx := WithUserID(c.Request.Context(), userID)
				ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
				c.Request = c.Request.WithContext(ctx)
				c.Set(string(userIDKey), userID)
				c.Next()
				return
			}
		}

		logger.Warn("Rejected request authentication", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": tokenErrorMessage(err), "code": "unauthorized"})
	}
}
