package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response define la estructura de respuesta
type Response struct {
	Code       int               `json:"code"`
	Mess       string            `json:"mess"`
	Data       interface{}       `json:"data,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

// Pagination define la estructura de paginación
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success devuelve una respuesta exitosa
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Éxito",
		Data: data,
	})
}

// Created devuelve 201 con el recurso creado
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Creado",
		Data: data,
	})
}

// NoContent devuelve 204
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SuccessWithPagination devuelve una respuesta exitosa paginada
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Éxito",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Unauthorized devuelve 401
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "No autenticado",
	})
}

// Forbidden devuelve 403
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "No tienes permiso para realizar esta acción",
	})
}

