package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	StoreDriver string // memory|mysql
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SeedWorkers int
	CacheTTL    time.Duration
	SessionTTL  time.Duration
	WriteRPS    float64
	WriteBurst  int
}

func Load() Config {
	_ = godotenv.Load() // optional .env for local runs

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		StoreDriver: env("STORE_DRIVER", "memory"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/rentwatch?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		SeedWorkers: atoi("SEED_WORKERS", 4),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SessionTTL:  time.Duration(atoi("SESSION_TTL_SECONDS", 3600)) * time.Second,
		WriteRPS:    float64(atoi("WRITE_RPS", 5)),
		WriteBurst:  atoi("WRITE_BURST", 10),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
