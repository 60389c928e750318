package services

import (
	"context"
	"net/http"
	"strings"

	"reservas/constants"
	"reservas/dto"
	apperrors "reservas/errors"
	"reservas/models"
	"reservas/repository"
	"reservas/services/logger"
	"reservas/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// unusablePrefix marca contraseñas que nunca validan (usuarios creados para tokens)
const unusablePrefix = "!"

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Save(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, p repository.Page) ([]models.User, int64, error)
	Delete(ctx context.Context, id uint) error
}

type TokenStore interface {
	FindByKey(ctx context.Context, key string) (*models.APIToken, error)
	FindByUser(ctx context.Context, userID uint) (*models.APIToken, error)
	Create(ctx context.Context, t *models.APIToken) error
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// UnusablePassword devuelve un hash que CheckPassword nunca acepta
func UnusablePassword() string {
	return unusablePrefix + uuid.NewString()
}

func CheckPassword(hash, password string) bool {
	if hash == "" || strings.HasPrefix(hash, unusablePrefix) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AuthService emite credenciales y resuelve el usuario de cada petición
type AuthService struct {
	users  UserStore
	tokens TokenStore
	issuer *TokenIssuer
	logger logger.Logger
}

func NewAuthService(users UserStore, tokens TokenStore, issuer *TokenIssuer, log logger.Logger) *AuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthService{users: users, tokens: tokens, issuer: issuer, logger: log}
}

// Login valida usuario y contraseña y emite el par de tokens
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.TokenPair, error) {
	if err := validator.Struct(req); err != nil {
		return dto.TokenPair{}, err
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if repository.IsNotFound(err) {
			return dto.TokenPair{}, invalidCredentials()
		}
		return dto.TokenPair{}, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar el usuario", err)
	}
	if !user.IsActive || !CheckPassword(user.Password, req.Password) {
		return dto.TokenPair{}, invalidCredentials()
	}

	pair, err := s.issuer.Pair(user)
	if err != nil {
		return dto.TokenPair{}, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "No se pudo emitir el token", err)
	}
	s.logger.Info("Login de %s (%s)", user.Username, user.Role())
	return pair, nil
}

// Refresh emite un nuevo token de acceso a partir de uno de refresco
func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshRequest) (dto.AccessToken, error) {
	if err := validator.Struct(req); err != nil {
		return dto.AccessToken{}, err
	}
	claims, err := s.issuer.ParseRefresh(req.Refresh)
	if err != nil {
		return dto.AccessToken{}, err
	}
	user, err := s.activeUser(ctx, claims.UserInfo.UserId)
	if err != nil {
		return dto.AccessToken{}, err
	}
	access, err := s.issuer.Access(UserInfo{UserId: user.ID, Role: user.Role()})
	if err != nil {
		return dto.AccessToken{}, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "No se pudo emitir el token", err)
	}
	return dto.AccessToken{Access: access}, nil
}

// AuthenticateJWT resuelve el usuario de un token de acceso
func (s *AuthService) AuthenticateJWT(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.issuer.ParseAccess(tokenString)
	if err != nil {
		return nil, err
	}
	return s.activeUser(ctx, claims.UserInfo.UserId)
}

// AuthenticateAPIKey resuelve el usuario de un token de API fijo
func (s *AuthService) AuthenticateAPIKey(ctx context.Context, key string) (*models.User, error) {
	token, err := s.tokens.FindByKey(ctx, key)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token inválido", nil)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al validar el token", err)
	}
	if token.User == nil {
		return s.activeUser(ctx, token.UserID)
	}
	if !token.User.IsActive {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInactiveUser, "Usuario inactivo o eliminado", nil)
	}
	return token.User, nil
}

// APITokenFor devuelve el token de API del usuario, creándolo si no existe
func (s *AuthService) APITokenFor(ctx context.Context, user *models.User) (*models.APIToken, error) {
	token, err := s.tokens.FindByUser(ctx, user.ID)
	if err == nil {
		return token, nil
	}
	if !repository.IsNotFound(err) {
		return nil, err
	}
	token = &models.APIToken{Key: NewAPIKey(), UserID: user.ID}
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// SetTokenCookies guarda el token de acceso en la cookie que lee el websocket
func (s *AuthService) SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		constants.AccessTokenCookie,
		accessToken,
		int(s.issuer.AccessTTL().Seconds()),
		"/",
		"",
		c.Request.TLS != nil,
		true,
	)
}

func (s *AuthService) activeUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Usuario no encontrado", apperrors.ErrUserNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar el usuario", err)
	}
	if !user.IsActive {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInactiveUser, "Usuario inactivo o eliminado", nil)
	}
	return user, nil
}

func invalidCredentials() error {
	return apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "No se encontró una cuenta activa con esas credenciales", apperrors.ErrInvalidPassword)
}
