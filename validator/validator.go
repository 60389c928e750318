package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	apperrors "reservas/errors"
	"reservas/models"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate

	usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)
	numericRegex  = regexp.MustCompile(`^[0-9]+$`)
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRegex.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("notnumeric", func(fl validator.FieldLevel) bool {
			return !numericRegex.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("notification_kind", func(fl validator.FieldLevel) bool {
			return models.NotificationKind(fl.Field().String()).Valid()
		})
	})
	return validate
}

// Struct valida un DTO y devuelve un AppError con los errores por campo
func Struct(obj interface{}) error {
	err := instance().Struct(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Datos inválidos", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return apperrors.NewValidationError(fields)
}

// Interval comprueba que el fin sea posterior al inicio
func Interval(start, end time.Time) error {
	if !end.After(start) {
		return apperrors.NewValidationError(map[string]string{
			"fecha_fin": "La fecha de fin debe ser posterior a la fecha de inicio.",
		})
	}
	return nil
}

// Field construye un error de validación para un único campo
func Field(name, msg string) error {
	return apperrors.NewValidationError(map[string]string{name: msg})
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio."
	case "email":
		return "Introduzca una dirección de correo electrónico válida."
	case "max":
		return fmt.Sprintf("Asegúrese de que este campo no tenga más de %s caracteres.", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Asegúrese de que este campo tenga al menos %s caracteres.", fe.Param())
		}
		return fmt.Sprintf("Asegúrese de que este valor sea mayor o igual a %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Elija una opción válida: %s.", fe.Param())
	case "username":
		return "Introduzca un nombre de usuario válido: solo letras, números y @/./+/-/_."
	case "notification_kind":
		return fmt.Sprintf("Elija una opción válida: %s %s %s.", models.NotificationGeneral, models.NotificationEndingSoon, models.NotificationExtended)
	case "notnumeric":
		return "La contraseña no puede ser completamente numérica."
	default:
		return fmt.Sprintf("Valor inválido (%s).", fe.Tag())
	}
}
