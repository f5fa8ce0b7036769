package identity

import (
	"errors"
	"fmt"
	"strings"
	"ticketee/internal/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

const defaultRole = "organizer"

type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenParser 驗證 HS256 簽章的 access token
type TokenParser struct {
	secret []byte
	issuer string
}

func NewTokenParser(secret, issuer string) *TokenParser {
	return &TokenParser{secret: []byte(secret), issuer: issuer}
}

// ParseAuthorization 解析 "Bearer <token>" header
func (p *TokenParser) ParseAuthorization(header string) (*model.Principal, error) {
	h := strings.TrimSpace(header)
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, ErrMissingToken
	}
	return p.Parse(strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")))
}

func (p *TokenParser) Parse(raw string) (*model.Principal, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(30 * time.Second),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(strings.TrimSpace(claims.UserID))
	if err != nil {
		return nil, fmt.Errorf("%w: bad uid", ErrInvalidToken)
	}
	role := strings.TrimSpace(claims.Role)
	if role == "" {
		role = defaultRole
	}
	return &model.Principal{ID: userID, Email: claims.Email, Role: role}, nil
}

// Sign 簽發 token，供測試與本地開發使用
func (p *TokenParser) Sign(principal model.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: principal.ID.String(),
		Email:  principal.Email,
		Role:   principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}
