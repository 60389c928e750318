package controllers

import (
	"strconv"

	apperrors "reservas/errors"

	"github.com/gin-gonic/gin"
)

// paramID lee el :id de la ruta; si no es un entero positivo responde 404
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		_ = c.Error(apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "No encontrado", err))
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodifica el cuerpo; un JSON mal formado es un 400
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "JSON inválido: "+err.Error(), err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		_ = c.Error(apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Parámetros inválidos: "+err.Error(), err))
		return false
	}
	return true
}

// fail deja el error para ErrorHandler
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}
