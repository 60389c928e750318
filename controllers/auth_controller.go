package controllers

import (
	"context"
	"net/http"

	"reservas/dto"
	"reservas/middleware"
	"reservas/models"
	"reservas/response"
	"reservas/types"

	"github.com/gin-gonic/gin"
)

type Authentication interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenPair, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (dto.AccessToken, error)
	SetTokenCookies(c *gin.Context, accessToken string)
}

type Registrar interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
}

type AuthController struct {
	auth  Authentication
	users Registrar
}

func NewAuthController(auth Authentication, users Registrar) *AuthController {
	return &AuthController{auth: auth, users: users}
}

// Login godoc
// @Summary Obtiene el par de JWT y fija la cookie access_token
// @Tags auth
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.TokenPair
// @Failure 401 {object} response.Response
// @Router /token/ [post]
func (a *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := a.auth.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	a.auth.SetTokenCookies(c, pair.Access)
	c.JSON(http.StatusOK, pair)
}

func (a *AuthController) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	access, err := a.auth.Refresh(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	a.auth.SetTokenCookies(c, access.Access)
	c.JSON(http.StatusOK, access)
}

// RegisterUser godoc
// @Summary Registro público; la cuenta entra al grupo Cajero
// @Tags auth
// @Param body body dto.RegisterRequest true "Usuario"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} response.Response
// @Router /register/ [post]
func (a *AuthController) RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := a.users.Register(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Usuario registrado"})
}

func (a *AuthController) UserInfo(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c)
		return
	}
	c.JSON(http.StatusOK, types.NewUserInfoResponse(user))
}
