package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Shruthi-d-official/WareHouse/internal/authz"
	"github.com/Shruthi-d-official/WareHouse/internal/models"
)

// Claims carried inside the signed session token. The signing key itself is
// process-wide configuration and never part of the payload.
type Claims struct {
	UserID string     `json:"user_id"` // login identifier
	Role   authz.Role `json:"role"`
	ID     int64      `json:"id"` // internal row id within the tier table
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens. Constructed once at
// startup with the configured secret and injected everywhere it is needed.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(role authz.Role, id int64, userID string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		ID:     id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// accept HMAC only
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidCredentials
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, models.ErrInvalidCredentials
	}
	if _, rErr := authz.ParseRole(string(claims.Role)); rErr != nil {
		return nil, models.ErrInvalidCredentials
	}
	return claims, nil
}
