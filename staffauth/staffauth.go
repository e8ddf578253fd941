// Package staffauth validates the staff tokens order-svc issues, for services
// that only need to check them.
package staffauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

const Issuer = "qr-dine-order-svc"

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	StaffID      int    `json:"staff_id"`
	RestaurantID int    `json:"restaurant_id"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

type Validator struct {
	secret []byte
}

func NewValidator(secret string) *Validator {
	return &Validator{secret: []byte(secret)}
}

func (v *Validator) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(Issuer))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Protect admits requests carrying a valid token for the restaurant in the
// {id} route variable. With roles given, the token's role must be one of them.
func (v *Validator) Protect(next http.HandlerFunc, roles ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := v.Validate(bearerToken(r))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", err.Error())
			return
		}
		restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])
		if claims.RestaurantID != restaurantID {
			writeError(w, http.StatusForbidden, "forbidden", "token is not valid for this restaurant")
			return
		}
		if len(roles) > 0 && !contains(roles, claims.Role) {
			writeError(w, http.StatusForbidden, "forbidden", "role "+claims.Role+" cannot access this resource")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	}
}

type claimsKey struct{}

func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}

// bearerToken reads the Authorization header, falling back to a token query
// parameter for EventSource clients, which cannot set headers.
func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]map[string]string{
		"error": {"code": code, "message": message},
	})
}
