package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port       string        `env:"PORT" envDefault:"8080"`
	DBURL      string        `env:"DB_URL,required,notEmpty"`
	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"24h"`
	CORSOrigin string        `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`

	// MediaRoot is the directory holding uploaded image content. It is served
	// under MediaURL only when Debug is set.
	MediaRoot     string `env:"MEDIA_ROOT" envDefault:"media"`
	MediaURL      string `env:"MEDIA_URL" envDefault:"/media"`
	MaxUploadSize int64  `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"`

	Debug bool `env:"DEBUG" envDefault:"false"`

	// Timezone decides what "today" means when a submitted campaign is
	// checked for completion.
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`

	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type RateLimit struct {
	RPS   float64 `env:"RPS" envDefault:"20"`
	Burst int     `env:"BURST" envDefault:"50"`
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
