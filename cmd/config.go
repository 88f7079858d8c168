package main

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	OwnerID           string        `env:"OWNER_ID,required=true" validate:"required"`
	BotID             string        `env:"BOT_ID,required=true" validate:"required"`
	CommandPrefix     string        `env:"COMMAND_PREFIX,default=!" validate:"required"`
	GatewayURL        string        `env:"GATEWAY_URL,required=true" validate:"required,uri"`
	RosterTTL         time.Duration `env:"ROSTER_TTL,default=30s" validate:"gt=0"`
	TransportTimeout  time.Duration `env:"TRANSPORT_TIMEOUT,default=10s" validate:"gt=0"`
	BufferSize        int           `env:"BUFFER_SIZE,default=64" validate:"gt=0"`
	NumberOfWorkers   int           `env:"NUMBER_OF_WORKERS,default=4" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=30s" validate:"gt=0"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
}

var validate = validator.New()

func (c Config) Validate() error {
	return validate.Struct(c)
}
