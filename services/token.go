package services

import (
	"github.com/dgrijalva/jwt-go"

	"hotel/errors"
)

// ParseToken valida a assinatura e devolve o userID e o papel
func ParseToken(tokenString string) (uint, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Método de assinatura inesperado", nil)
		}
		return secretKey(), nil
	})
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token inválido", err)
	}
	if !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token inválido", nil)
	}
	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}
