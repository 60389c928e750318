package services

import (
	"fmt"
	"strings"
	"time"

	"reservas/dto"
	apperrors "reservas/errors"
	"reservas/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

const (
	tokenAccess  = "access"
	tokenRefresh = "refresh"
)

type UserInfo struct {
	UserId uint        `json:"userid"`
	Role   models.Role `json:"role"`
}

type Claims struct {
	UserInfo  UserInfo `json:"userinfo"`
	TokenType string   `json:"token_type"`
	jwt.StandardClaims
}

// TokenIssuer firma y verifica los JWT de acceso y refresco
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Pair emite un par access/refresh para el usuario
func (t *TokenIssuer) Pair(u *models.User) (dto.TokenPair, error) {
	info := UserInfo{UserId: u.ID, Role: u.Role()}
	access, err := t.sign(info, tokenAccess, t.accessTTL)
	if err != nil {
		return dto.TokenPair{}, err
	}
	refresh, err := t.sign(info, tokenRefresh, t.refreshTTL)
	if err != nil {
		return dto.TokenPair{}, err
	}
	return dto.TokenPair{Access: access, Refresh: refresh}, nil
}

func (t *TokenIssuer) Access(info UserInfo) (string, error) {
	return t.sign(info, tokenAccess, t.accessTTL)
}

// AccessTTL es la vida del token de acceso, usada también para la cookie
func (t *TokenIssuer) AccessTTL() time.Duration {
	return t.accessTTL
}

func (t *TokenIssuer) sign(info UserInfo, kind string, ttl time.Duration) (string, error) {
	now := t.now()
	claims := &Claims{
		UserInfo:  info,
		TokenType: kind,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
			Id:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ParseAccess valida la firma, la expiración y el tipo del token de acceso
func (t *TokenIssuer) ParseAccess(tokenString string) (*Claims, error) {
	return t.parse(tokenString, tokenAccess)
}

func (t *TokenIssuer) ParseRefresh(tokenString string) (*Claims, error) {
	return t.parse(tokenString, tokenRefresh)
}

func (t *TokenIssuer) parse(tokenString, kind string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token inválido o expirado", err)
	}
	if claims.TokenType != kind {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Tipo de token incorrecto", nil)
	}
	return claims, nil
}

// NewAPIKey genera la clave de 40 caracteres hexadecimales de un token de API
func NewAPIKey() string {
	raw := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	return raw[:40]
}
