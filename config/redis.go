package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis conecta a Redis. Sin REDIS_ADDR devuelve nil y la caché,
// el rate limit y el candado del job quedan desactivados.
func ConnectRedis(s Settings) (*redis.Client, error) {
	if s.RedisAddr == "" {
		log.Println("REDIS_ADDR vacío: Redis desactivado")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     s.RedisAddr,
		Username: s.RedisUser,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := rdb.Ping(ctx).Result()
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}

	RedisClient = rdb
	log.Println("Conexión a Redis establecida:", res)
	return rdb, nil
}
