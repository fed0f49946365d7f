package app

import (
	"github.com/dmitrymomot/patchbind/core/binder"
	"github.com/dmitrymomot/patchbind/core/server"
	"github.com/dmitrymomot/patchbind/integration/database/redis"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Server server.Config
	Redis  redis.Config

	AppName     string `env:"APP_NAME" envDefault:"patchdemo"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	MaxBodySize int64  `env:"BIND_MAX_BODY_SIZE" envDefault:"1048576"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
}

// DefaultConfig mirrors the envDefault values.
func DefaultConfig() Config {
	return Config{
		Server:      server.Config{Addr: ":8080"},
		AppName:     "patchdemo",
		Env:         "development",
		LogLevel:    "info",
		MaxBodySize: binder.DefaultMaxJSONSize,
		StoreDriver: StoreMemory,
	}
}
