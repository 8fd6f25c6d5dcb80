package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"todogql/internal/model"
)

// LoginTokenTTL is the lifetime of tokens issued by loginUser.
const LoginTokenTTL = 3 * time.Hour

var (
	errUnexpectedSigningMethod = errors.New("unexpected signing method")
	errInvalidToken            = errors.New("invalid token")
)

// Claims represents JWT claims.
type Claims struct {
	UserID string     `json:"user_id"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// IssueToken signs a self-contained token for subjectID that expires after ttl.
func (s *JWTService) IssueToken(subjectID string, role model.Role, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: subjectID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errInvalidToken
	}
	// Tokens without an expiry would never age out.
	if claims.ExpiresAt == nil || claims.UserID == "" || !claims.Role.Valid() {
		return nil, errInvalidToken
	}

	return claims, nil
}

// ResolveCaller turns a raw token into a caller identity. Any problem with the
// token yields Anonymous; it never fails.
func (s *JWTService) ResolveCaller(raw string) Caller {
	if raw == "" {
		return Anonymous
	}
	claims, err := s.ValidateToken(raw)
	if err != nil {
		return Anonymous
	}
	return Caller{UserID: claims.UserID, Role: claims.Role}
}
