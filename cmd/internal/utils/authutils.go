package utils

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"rlk/cmd/internal/domain/entity"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingToken   = errors.New("token not provided")
	ErrMalformedToken = errors.New("token malformed")
)

type TokenClaims struct {
	Email    string `json:"email"`
	Nome     string `json:"nome"`
	TenantID int64  `json:"tenantId"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token whose subject is the user id.
func SignToken(secret []byte, ttl time.Duration, u *entity.Usuario) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Email:    u.Email,
		Nome:     u.Nome,
		TenantID: u.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken parses AND validates the signature locally.
// It returns the principal if the token is authentic and unexpired.
func ValidateToken(secret []byte, tokenString string) (*entity.Principal, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 || claims.TenantID <= 0 {
		return nil, errors.New("token subject or tenant is invalid")
	}

	return &entity.Principal{
		UserID:   userID,
		TenantID: claims.TenantID,
		Email:    claims.Email,
		Nome:     claims.Nome,
	}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrMalformedToken
	}
	return token, nil
}
