package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de cuenta válidos para el claim userType.
const (
	TypeUser  = "user"
	TypeAdmin = "admin"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// El campo de identificación está discriminado por tipo de cuenta: userId para
// cuentas user y adminId para cuentas admin (solo uno de los dos está presente).
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId,omitempty"`
	AdminID  string `json:"adminId,omitempty"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Status   string `json:"status,omitempty"`
	UserType string `json:"userType"` // "user" | "admin"
}

// AccountID devuelve el id de la cuenta según el tipo (userId o adminId).
func (c *Claims) AccountID() string {
	if c.UserType == TypeAdmin {
		return c.AdminID
	}
	return c.UserID
}

// Issue genera un token HS256 firmado con el claim de identificación que
// corresponde al tipo de cuenta. Expira en expDays días.
func Issue(secret, id, email, name, status, userType string, expDays int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expDays) * 24 * time.Hour)),
		},
		Email:    email,
		Name:     name,
		Status:   status,
		UserType: userType,
	}
	if userType == TypeAdmin {
		claims.AdminID = id
	} else {
		claims.UserID = id
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
