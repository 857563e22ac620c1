package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims carries the employee identity: subject is the email,
// role and employee id ride alongside the registered claims.
type AccessClaims struct {
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id"`
	jwt.RegisteredClaims
}

func GenerateAccessToken(email string, role string, employeeID string, secret string, hours int) (string, error) {
	expiration := time.Now().Add(time.Duration(hours) * time.Hour)
	claims := AccessClaims{
		Role:       role,
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseAccessToken(tokenString string, secret string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
