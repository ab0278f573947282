package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Shutdown struct {
			GracePeriodSeconds int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"hus"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"true"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Authorization,Content-Type"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			Enable           bool     `envconfig:"ENABLE" default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
	} `envconfig:"APP"`

	JWT struct {
		Secret       string `envconfig:"SECRET" default:"front-desk-terminal"`
		SessionHours int    `envconfig:"SESSION_HOURS" default:"12"`
	} `envconfig:"JWT"`

	Store struct {
		Dir string `envconfig:"DIR" default:"data"`
	} `envconfig:"STORE"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
