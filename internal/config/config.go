package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrUnknownStorage = errors.New("unknown session storage")

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage    string        `yaml:"storage" env:"STORAGE" env-default:"memory"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"24h"`
	Redis      Redis         `yaml:"redis"`
	Popup      Popup         `yaml:"popup"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Popup holds the image shown for each game outcome.
type Popup struct {
	DrawImage      string `yaml:"draw-image" env:"POPUP_DRAW_IMAGE" env-default:"https://media3.giphy.com/media/v1.Y2lkPTc5MGI3NjExc2VibmQycDJwM3pwa252MjZwOG12bHF3NTVpdDk2dWMyNHVyc3JrcCZlcD12MV9pbnRlcm5hbF9naWZfYnlfaWQmY3Q9Zw/2WGDUTmsB4DzFuvZ2t/giphy.webp"`
	FirstWinImage  string `yaml:"first-win-image" env:"POPUP_FIRST_WIN_IMAGE" env-default:"https://media3.giphy.com/media/v1.Y2lkPTc5MGI3NjExZTJkbHV0bHZqaGt4aGxtdGp3YXQ4OThrdXNoa3V4cW1kbnR2bWN0OSZlcD12MV9pbnRlcm5hbF9naWZfYnlfaWQmY3Q9Zw/26tPo9rksWnfPo4HS/giphy.webp"`
	SecondWinImage string `yaml:"second-win-image" env:"POPUP_SECOND_WIN_IMAGE" env-default:"https://media2.giphy.com/media/v1.Y2lkPTc5MGI3NjExNzExYXVndG8xNWhiOHBxc204eHJxMzR2enYyN2ljY3A1d3FjaHZvcyZlcD12MV9pbnRlcm5hbF9naWZfYnlfaWQmY3Q9Zw/BFZYfubkyrXKWT324x/giphy.webp"`
}

// Load reads the yaml file at path and applies env overrides. When the file
// does not exist only env and defaults are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read env config: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) validate() error {
	switch that.Storage {
	case StorageMemory, StorageRedis:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage)
	}
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
