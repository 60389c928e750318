package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode define el código de error
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeInactiveUser    ErrorCode = "INACTIVE_USER"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// User errors
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists   ErrorCode = "USER_EXISTS"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeRoomNotFound        ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeReservationNotFound ErrorCode = "RESERVATION_NOT_FOUND"
	ErrCodeStateNotFound       ErrorCode = "STATE_NOT_FOUND"
	ErrCodeMissingState        ErrorCode = "MISSING_STATE"
	ErrCodeRateLimited         ErrorCode = "RATE_LIMITED"
	ErrCodeUpload              ErrorCode = "UPLOAD_FAILED"
)

// AppError define el error de la aplicación
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	// Fields guarda los errores por campo (nombre json -> mensaje)
	Fields map[string]string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError crea un nuevo AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError crea un error de validación con errores por campo
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: "Datos inválidos",
		Fields:  fields,
	}
}

// GetAppError extrae el AppError de la cadena de errores
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode indica si err es un AppError con el código dado
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// HTTPStatus traduce el código de error al estado HTTP
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeMissingToken, ErrCodeInvalidPassword, ErrCodeInactiveUser:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeUserNotFound, ErrCodeDBNotFound, ErrCodeRoomNotFound, ErrCodeReservationNotFound, ErrCodeStateNotFound:
		return http.StatusNotFound
	case ErrCodeValidation, ErrCodeInvalidFormat, ErrCodeUserExists, ErrCodeInvalidRole:
		return http.StatusBadRequest
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrRecordNotFound      = errors.New("record not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrStateNotFound       = errors.New("reservation state not found")
)
