package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

// Settings reúne toda la configuración leída del entorno
type Settings struct {
	Env      string
	Port     string
	LogLevel string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DBTimeZone  string

	RedisAddr     string
	RedisUser     string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	WebhookURL     string
	WebhookTimeout time.Duration
	AMQPURL        string
	AMQPQueue      string

	GeminiAPIKey string
	GeminiModel  string

	CloudinaryURL    string
	CloudinaryFolder string

	AutoExtendEnabled   bool
	AutoExtendSchedule  string
	AutoExtendLookahead time.Duration
	AutoExtendStep      time.Duration

	RequireOrderedInterval bool

	RateLimit   RateLimitConfig
	CORSOrigins []string
}

// RateLimitConfig configura el token bucket del chatbot
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

// LoadEnv carga el archivo .env si existe
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: no se pudo cargar .env, se usan las variables del sistema: %v", err)
	}
}

// Load construye Settings a partir de las variables de entorno
func Load() (Settings, error) {
	LoadEnv()

	s := Settings{
		Env:      envStr("ENV", "dev"),
		Port:     envStr("PORT", "8000"),
		LogLevel: envStr("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      envStr("DB_HOST", "localhost"),
		DBPort:      envStr("DB_PORT", "5432"),
		DBUser:      envStr("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      envStr("DB_NAME", "reservas"),
		DBSSLMode:   envStr("DB_SSLMODE", "disable"),
		DBTimeZone:  envStr("DB_TIMEZONE", "UTC"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisUser:     os.Getenv("REDIS_USER"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		AccessTTL:  envDur("JWT_ACCESS_TTL", 60*time.Minute),
		RefreshTTL: envDur("JWT_REFRESH_TTL", 24*time.Hour),

		WebhookURL:     os.Getenv("WEBHOOK_URL"),
		WebhookTimeout: envDur("WEBHOOK_TIMEOUT", 2*time.Second),
		AMQPURL:        os.Getenv("AMQP_URL"),
		AMQPQueue:      envStr("AMQP_QUEUE", "reservas.estado"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envStr("GEMINI_MODEL", "gemini-2.0-flash"),

		CloudinaryURL:    os.Getenv("CLOUDINARY_URL"),
		CloudinaryFolder: envStr("CLOUDINARY_FOLDER", "salas"),

		AutoExtendEnabled:   envBool("AUTO_EXTEND_ENABLED", true),
		AutoExtendSchedule:  envStr("AUTO_EXTEND_SCHEDULE", "*/5 * * * *"),
		AutoExtendLookahead: envDur("AUTO_EXTEND_LOOKAHEAD", 15*time.Minute),
		AutoExtendStep:      envDur("AUTO_EXTEND_STEP", 30*time.Minute),

		RequireOrderedInterval: envBool("RESERVATION_REQUIRE_ORDERED_INTERVAL", false),

		RateLimit: RateLimitConfig{
			Enabled:        envBool("RATE_LIMIT_ENABLED", true),
			Capacity:       envInt("RATE_LIMIT_CAPACITY", 20),
			RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
			RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", 3*time.Second),
			TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
			Prefix:         envStr("RATE_LIMIT_PREFIX", "rl:chatbot"),
		},
		CORSOrigins: envList("CORS_ORIGINS"),
	}

	if s.RateLimit.Capacity < 1 {
		s.RateLimit.Capacity = 1
	}
	if s.RateLimit.RefillTokens < 1 {
		s.RateLimit.RefillTokens = 1
	}
	if s.RateLimit.RefillInterval <= 0 {
		s.RateLimit.RefillInterval = time.Second
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate comprueba los valores obligatorios
func (s Settings) Validate() error {
	if s.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET es obligatorio")
	}
	if s.AutoExtendLookahead <= 0 || s.AutoExtendStep <= 0 {
		return fmt.Errorf("AUTO_EXTEND_LOOKAHEAD y AUTO_EXTEND_STEP deben ser positivos")
	}
	return nil
}

// IsDev indica si la aplicación corre en desarrollo
func (s Settings) IsDev() bool {
	return s.Env == "dev" || s.Env == "development"
}

// ConnectCloudinary inicializa el cliente de Cloudinary si hay credenciales
func ConnectCloudinary(url string) (*cloudinary.Cloudinary, error) {
	if url == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("error al inicializar Cloudinary: %w", err)
	}
	Cloudinary = cld
	return cld, nil
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		switch strings.ToLower(v) {
		case "yes", "on", "si", "sí":
			return true
		case "no", "off":
			return false
		}
		return d
	}
	return b
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	// también se aceptan segundos enteros
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return d
}

func envList(k string) []string {
	v := os.Getenv(k)
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
