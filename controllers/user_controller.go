package controllers

import (
	"context"

	"reservas/dto"
	"reservas/models"
	"reservas/response"
	"reservas/validator"

	"github.com/gin-gonic/gin"
)

type UserManager interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	Create(ctx context.Context, req dto.UserRequest) (*models.User, error)
	Update(ctx context.Context, id uint, patch dto.UserPatch) (*models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context, q dto.ListQuery) ([]models.User, int64, error)
	Delete(ctx context.Context, id uint) error
}

type UserController struct {
	users UserManager
}

func NewUserController(users UserManager) *UserController {
	return &UserController{users: users}
}

func (u *UserController) GetUsers(c *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	users, total, err := u.users.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	q.Normalize()
	response.SuccessWithPagination(c, dto.NewUserResponses(users), q.Page, q.Limit, int(total))
}

func (u *UserController) GetUserByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := u.users.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewUserResponse(user))
}

func (u *UserController) CreateUser(c *gin.Context) {
	var req dto.UserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := u.users.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.NewUserResponse(user))
}

func (u *UserController) ReplaceUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UserRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validator.Struct(req); err != nil {
		fail(c, err)
		return
	}
	u.update(c, id, req.ToPatch())
}

func (u *UserController) UpdateUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch dto.UserPatch
	if !bindJSON(c, &patch) {
		return
	}
	u.update(c, id, patch)
}

func (u *UserController) update(c *gin.Context, id uint, patch dto.UserPatch) {
	user, err := u.users.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewUserResponse(user))
}

func (u *UserController) DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := u.users.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}
