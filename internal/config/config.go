package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis  `yaml:"redis"`
	Bot        Bot    `yaml:"bot"`
}

type Redis struct {
	Host string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// Bot configures the opponents. PreferredRow/PreferredCol is the cell tried when the
// network proposes an occupied one; Seed 0 seeds from the clock.
type Bot struct {
	PreferredRow int    `yaml:"preferred-row" env:"BOT_PREFERRED_ROW" env-default:"2"`
	PreferredCol int    `yaml:"preferred-col" env:"BOT_PREFERRED_COL" env-default:"1"`
	Seed         int64  `yaml:"seed" env:"BOT_SEED" env-default:"0"`
	NetworkPath  string `yaml:"network-path" env:"BOT_NETWORK_PATH" env-default:""`
	HiddenLayers []int  `yaml:"hidden-layers" env:"BOT_HIDDEN_LAYERS" env-default:"100,100,100"`
	Stochastic   bool   `yaml:"stochastic" env:"BOT_STOCHASTIC" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
