package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Aaron-Ontoyin/enerlytics-backend/config"
	apperrors "github.com/Aaron-Ontoyin/enerlytics-backend/internal/errors"
)

// Token types
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the validated payload of an issued token.
type TokenClaims struct {
	UserID    string
	TokenType string
	JTI       string
	ExpiresAt time.Time
}

type JWTService struct {
	secretKey      string
	accessExpires  time.Duration
	refreshExpires time.Duration
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secretKey:      cfg.Secret,
		accessExpires:  time.Duration(cfg.AccessExpireHours) * time.Hour,
		refreshExpires: time.Duration(cfg.RefreshExpireHours) * time.Hour,
	}
}

// GenerateAccessToken creates a signed access token for the user.
func (s *JWTService) GenerateAccessToken(userID string) (string, error) {
	return s.generate(userID, TokenTypeAccess, s.accessExpires)
}

// GenerateRefreshToken creates a signed refresh token for the user.
func (s *JWTService) GenerateRefreshToken(userID string) (string, error) {
	return s.generate(userID, TokenTypeRefresh, s.refreshExpires)
}

func (s *JWTService) generate(userID, tokenType string, expires time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    tokenType,
		"jti":     uuid.NewString(),
		"exp":     now.Add(expires).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses and verifies a token, checking it carries the
// expected type claim.
func (s *JWTService) ValidateToken(tokenString, expectedType string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	parsed, err := parseClaims(claims)
	if err != nil {
		return nil, err
	}

	if parsed.TokenType != expectedType {
		return nil, apperrors.ErrInvalidTokenType
	}

	return parsed, nil
}

func parseClaims(claims jwt.MapClaims) (*TokenClaims, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	tokenType, ok := claims["type"].(string)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return nil, apperrors.ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	return &TokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		JTI:       jti,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
