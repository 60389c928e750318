package config

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp crea el router, el hub de websockets y el cron, y conecta los
// componentes externos.
func InitApp(s Settings) (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	if !s.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Session-ID")
	configCors.AllowCredentials = true
	if len(s.CORSOrigins) > 0 {
		configCors.AllowOrigins = s.CORSOrigins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(s); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

// InitStore conecta solo la base de datos y Redis, para los comandos de consola
func InitStore(s Settings) error {
	if _, err := ConnectDB(s); err != nil {
		return err
	}
	if err := Migrate(DB); err != nil {
		return fmt.Errorf("failed to migrate: %v", err)
	}
	if _, err := ConnectRedis(s); err != nil {
		log.Printf("Redis no disponible: %v", err)
	}
	return nil
}

func initComponents(s Settings) error {
	if err := InitStore(s); err != nil {
		return err
	}

	if _, err := ConnectCloudinary(s.CloudinaryURL); err != nil {
		return err
	}

	log.Println("All components initialized successfully")
	return nil
}
