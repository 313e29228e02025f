package config

import (
	"time"

	"github.com/ardanlabs/conf/v3"
)

type Config struct {
	conf.Version
	Web  Web
	DB   DB
	Cors Cors
	Rate Rate
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:3000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
	StaticDir       string        `conf:"default:frontend"`
}

type DB struct {
	User         string `conf:"default:postgres"`
	Password     string `conf:"default:postgres,mask"`
	Host         string `conf:"default:localhost:5432"`
	Name         string `conf:"default:masterclasses"`
	MaxIdleConns int    `conf:"default:5"`
	MaxOpenConns int    `conf:"default:25"`
	DisableTLS   bool   `conf:"default:true"`
	Migrate      bool   `conf:"default:true"`
}

type Cors struct {
	Origin string `conf:"default:*"`
}

type Rate struct {
	Burst   int     `conf:"default:50"`
	RPS     float64 `conf:"default:25"`
	Expiry  int     `conf:"default:3"`
	Enabled bool    `conf:"default:true"`
}
