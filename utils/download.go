package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// GenerateDownloadToken creates a signed token granting access to the product
// purchased in the given transaction. The token is embedded in the invoice
// email and expires after DownloadLinkTTL.
func GenerateDownloadToken(transactionID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"transaction_id": transactionID,
		"scope":          "download",
		"exp":            time.Now().Add(DownloadLinkTTL).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ValidateDownloadToken verifies a download token and returns the transaction
// id it was minted for.
func ValidateDownloadToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	if scope, _ := claims["scope"].(string); scope != "download" {
		return "", errors.New("not a download token")
	}
	transactionID, _ := claims["transaction_id"].(string)
	if transactionID == "" {
		return "", errors.New("missing transaction id")
	}
	return transactionID, nil
}
