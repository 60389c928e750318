package constants

import "time"

// Nombres de estado de reserva sembrados por defecto
const (
	StatePending   = "pendiente"
	StateConfirmed = "confirmada"
	StateCancelled = "cancelada"
)

// Auto-extensión
const (
	DefaultLookahead = 15 * time.Minute
	DefaultExtension = 30 * time.Minute
)

// Claves de Redis
const (
	CacheKeyAvailableRooms = "salas:disponibles"
	LockKeyAutoExtend      = "lock:auto-extend"
)

const (
	CacheTTLRooms = 5 * time.Minute
	LockTTLJob    = time.Minute
)

// Cookie con el JWT de acceso
const AccessTokenCookie = "access_token"

// Claves en el contexto de gin
const (
	ContextUser      = "user"
	ContextSessionID = "sessionId"
)

// Paginación
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
