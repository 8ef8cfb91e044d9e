package shared

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv             string
	HTTPAddr           string
	MetricsAddr        string
	MySQLDSN           string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	DealerBase         string
	SentimentBase      string
	DealerRPS          int
	DownstreamTimeout  time.Duration
	SentimentWorkers   int
	SessionTTL         time.Duration
	DealersRequireAuth bool
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:             env("APP_ENV", "prod"),
		HTTPAddr:           env("HTTP_ADDR", ":8000"),
		MetricsAddr:        env("METRICS_ADDR", ":9100"),
		MySQLDSN:           env("MYSQL_DSN", "root:root@tcp(localhost:3306)/dealerhub?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:          env("REDIS_ADDR", "localhost:6379"),
		RedisPass:          env("REDIS_PASSWORD", ""),
		RedisDB:            atoi("REDIS_DB", 0),
		DealerBase:         env("DEALER_BASE_URL", "http://localhost:3030"),
		SentimentBase:      env("SENTIMENT_BASE_URL", "http://localhost:5050/"),
		DealerRPS:          atoi("DEALER_RPS", 20),
		DownstreamTimeout:  time.Duration(atoi("DOWNSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
		SentimentWorkers:   atoi("SENTIMENT_WORKERS", 8),
		SessionTTL:         time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,
		DealersRequireAuth: strings.EqualFold(env("DEALERS_REQUIRE_AUTH", "false"), "true"),
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
