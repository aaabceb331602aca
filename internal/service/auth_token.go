package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"crystalis-cms/internal/domain"
)

// AuthTokenService emite y valida los bearer tokens del panel de admin.
// Cada token lleva un jti registrado en el SessionTokenStore; revocar el
// jti (logout) invalida el token aunque su firma siga siendo válida.
type AuthTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	store  SessionTokenStore
}

type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

func NewAuthTokenService(secret string, ttl time.Duration, store SessionTokenStore) *AuthTokenService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	if store == nil {
		store = NewMemorySessionTokenStore()
	}
	return &AuthTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "crystalis-cms",
		store:  store,
	}
}

// Issue firma un token para la cuenta dada y registra su jti.
func (s *AuthTokenService) Issue(user domain.AdminUser) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}
	now := time.Now().UTC()
	jti := uuid.NewString()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	if err := s.store.Store(jti, user.ID, s.ttl); err != nil {
		return "", err
	}
	return signed, nil
}

// Verify comprueba firma, expiración y que el jti siga vivo en el store.
func (s *AuthTokenService) Verify(tokenString string) (Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return Claims{}, err
	}
	if claims.ID == "" {
		return Claims{}, ErrTokenInvalid
	}
	ok, err := s.store.Exists(claims.ID)
	if err != nil || !ok {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}

// Revoke borra el jti del store; el token deja de verificar.
func (s *AuthTokenService) Revoke(tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return err
	}
	if claims.ID == "" {
		return ErrTokenInvalid
	}
	return s.store.Revoke(claims.ID)
}

func (s *AuthTokenService) parse(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrTokenInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrTokenInvalid
	}
	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !s.isValidClaims(claims) {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}

func (s *AuthTokenService) isValidClaims(claims Claims) bool {
	if strings.TrimSpace(claims.UserID) == "" {
		return false
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return false
	}
	if claims.Subject != claims.UserID {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
