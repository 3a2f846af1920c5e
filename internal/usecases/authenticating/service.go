package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	Login(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica a única identidade administrativa definida na configuração
type Service struct {
	adminEmail        string
	adminPasswordHash string
	secretKey         string
	tokenTTL          time.Duration
	now               func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		adminEmail:        handleEmail(cfg.Auth.AdminEmail),
		adminPasswordHash: cfg.Auth.AdminPasswordHash,
		secretKey:         cfg.SecretKey,
		tokenTTL:          ttl,
		now:               time.Now,
	}
}

func (s *Service) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	if !s.enabled() {
		log.L.Warn("Tentativa de login sem ADMIN_PASSWORD_HASH ou SECRET_KEY configurados")
		return "", NewAuthError(ErrLoginDisabled, apiErrors.ErrServiceDisabled, "")
	}

	if handleEmail(email) != s.adminEmail {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	token, err := s.generateJWT()
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	log.L.WithField("user_email", s.adminEmail).Info("Login administrativo realizado")

	return token, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if !s.enabled() {
		return nil, NewAuthError(ErrLoginDisabled, apiErrors.ErrInvalidToken, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrInvalidToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// enabled exige hash da senha e uma chave diferente da padrão
func (s *Service) enabled() bool {
	return s.adminPasswordHash != "" &&
		s.secretKey != "" &&
		s.secretKey != config.DefaultSecretKey
}

func (s *Service) generateJWT() (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserEmail:  s.adminEmail,
		UserRoleID: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.adminEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
