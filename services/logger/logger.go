package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level define los niveles de log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel convierte "debug", "info" o "error" en Level
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger interface define los métodos de logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implementa Logger sobre zerolog
type DefaultLogger struct {
	zl zerolog.Logger
}

// NewDefaultLogger crea un logger JSON en stdout
func NewDefaultLogger(level Level) *DefaultLogger {
	return New(os.Stdout, level, false)
}

// New crea un logger; pretty activa la salida de consola legible
func New(w io.Writer, level Level, pretty bool) *DefaultLogger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	zl := zerolog.New(w).
		Level(toZerolog(level)).
		With().
		Timestamp().
		Str("service", "reservas").
		Logger()
	return &DefaultLogger{zl: zl}
}

// Nop descarta todo, para tests
func Nop() *DefaultLogger {
	return &DefaultLogger{zl: zerolog.Nop()}
}

// With devuelve un logger hijo con un campo fijo
func (l *DefaultLogger) With(key, value string) *DefaultLogger {
	return &DefaultLogger{zl: l.zl.With().Str(key, value).Logger()}
}

// Zerolog expone el logger subyacente
func (l *DefaultLogger) Zerolog() *zerolog.Logger {
	return &l.zl
}

// Info registra información
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.zl.Info().Msg(fmt.Sprintf(format, v...))
}

// Error registra errores
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.zl.Error().Msg(fmt.Sprintf(format, v...))
}

// Debug registra detalles de depuración
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msg(fmt.Sprintf(format, v...))
}

func toZerolog(level Level) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
