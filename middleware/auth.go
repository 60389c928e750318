package middleware

import (
	"context"
	"strings"

	"reservas/constants"
	apperrors "reservas/errors"
	"reservas/models"
	"reservas/response"

	"github.com/gin-gonic/gin"
)

// Authenticator resuelve el usuario de una credencial
type Authenticator interface {
	AuthenticateJWT(ctx context.Context, token string) (*models.User, error)
	AuthenticateAPIKey(ctx context.Context, key string) (*models.User, error)
}

// Authenticate identifica al usuario si la petición trae credenciales.
// Una cabecera Authorization inválida corta con 401; una cookie inválida se ignora.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			user, err := fromHeader(c.Request.Context(), auth, header)
			if err != nil {
				abortWith(c, err)
				return
			}
			c.Set(constants.ContextUser, user)
			c.Next()
			return
		}

		if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil && cookie != "" {
			if user, err := auth.AuthenticateJWT(c.Request.Context(), cookie); err == nil {
				c.Set(constants.ContextUser, user)
			}
		}
		c.Next()
	}
}

func fromHeader(ctx context.Context, auth Authenticator, header string) (*models.User, error) {
	scheme, credential, ok := strings.Cut(strings.TrimSpace(header), " ")
	credential = strings.TrimSpace(credential)
	if !ok || credential == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeMissingToken, "Cabecera Authorization inválida", nil)
	}
	switch strings.ToLower(scheme) {
	case "bearer":
		return auth.AuthenticateJWT(ctx, credential)
	case "token":
		return auth.AuthenticateAPIKey(ctx, credential)
	default:
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Esquema de autenticación no soportado", nil)
	}
}

// RequireAuth exige un usuario autenticado y, si se indican, uno de los roles
func RequireAuth(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			role := user.Role()
			hasRole := false
			for _, r := range roles {
				if r == role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}
		c.Next()
	}
}

// RequireStaff permite admin y cajero
func RequireStaff() gin.HandlerFunc {
	return RequireAuth(models.RoleAdmin, models.RoleCashier)
}

// CurrentUser devuelve el usuario autenticado o nil
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(constants.ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func abortWith(c *gin.Context, err error) {
	status, body := render(err)
	c.AbortWithStatusJSON(status, body)
}
