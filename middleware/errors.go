package middleware

import (
	"net/http"

	apperrors "reservas/errors"
	"reservas/response"

	"github.com/gin-gonic/gin"
)

// ErrorHandler convierte el último error de la petición en la respuesta JSON
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		status, body := render(c.Errors.Last().Err)
		c.JSON(status, body)
	}
}

func render(err error) (int, response.Response) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		return http.StatusInternalServerError, response.Response{Code: 0, Mess: err.Error()}
	}

	status := appErr.HTTPStatus()
	mess := appErr.Message
	if status == http.StatusInternalServerError && appErr.Err != nil {
		mess = appErr.Error()
	}
	return status, response.Response{
		Code:   0,
		Mess:   mess,
		Errors: appErr.Fields,
	}
}
