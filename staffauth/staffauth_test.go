package staffauth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "staffauth-secret"

func sign(t *testing.T, claims Claims, key string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func validClaims(restaurantID int, role string) Claims {
	return Claims{
		StaffID:      4,
		RestaurantID: restaurantID,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestValidate(t *testing.T) {
	v := NewValidator(secret)

	claims, err := v.Validate(sign(t, validClaims(3, "owner"), secret))
	require.NoError(t, err)
	assert.Equal(t, 3, claims.RestaurantID)
	assert.Equal(t, "owner", claims.Role)

	expired := validClaims(3, "owner")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	_, err = v.Validate(sign(t, expired, secret))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.Validate(sign(t, validClaims(3, "owner"), "other-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign := validClaims(3, "owner")
	foreign.Issuer = "elsewhere"
	_, err = v.Validate(sign(t, foreign, secret))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestProtect(t *testing.T) {
	v := NewValidator(secret)
	r := mux.NewRouter()
	r.HandleFunc("/restaurants/{id:[0-9]+}/report", v.Protect(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := FromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, 4, claims.StaffID)
		w.WriteHeader(http.StatusNoContent)
	}, "owner", "manager"))

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{name: "header token", path: "/restaurants/3/report", header: "Bearer " + sign(t, validClaims(3, "manager"), secret), wantStatus: http.StatusNoContent},
		{name: "query token", path: "/restaurants/3/report?token=" + sign(t, validClaims(3, "owner"), secret), wantStatus: http.StatusNoContent},
		{name: "no token", path: "/restaurants/3/report", wantStatus: http.StatusUnauthorized},
		{name: "other restaurant", path: "/restaurants/9/report", header: "Bearer " + sign(t, validClaims(3, "owner"), secret), wantStatus: http.StatusForbidden},
		{name: "role not allowed", path: "/restaurants/3/report", header: "Bearer " + sign(t, validClaims(3, "waiter"), secret), wantStatus: http.StatusForbidden},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			if testCase.header != "" {
				req.Header.Set("Authorization", testCase.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			assert.Equal(t, testCase.wantStatus, rr.Code)
		})
	}
}
