package stubapi

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

type contextKey string

const userIDKey contextKey = "userId"

// Claims carried by stub-issued tokens.
type Claims struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// IssueToken signs a 24h dev token.
func IssueToken(secret []byte, userID, email string) (string, error) {
	claims := Claims{
		Email:  email,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Authenticate guards a route with bearer-token auth.
func Authenticate(secret []byte, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			RespondWithError(w, http.StatusUnauthorized, "Missing token")
			return
		}
		if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
			RespondWithError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequestUserID pulls the authenticated user out of the request context.
func RequestUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
