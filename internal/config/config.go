package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Schedule   ScheduleConfig `yaml:"schedule"`
	Payout     PayoutConfig   `yaml:"payout"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	if len(cfg.Schedule.Games) == 0 {
		cfg.Schedule = DefaultScheduleConfig
	}

	if cfg.Payout.Multipliers == nil {
		cfg.Payout.Multipliers = DefaultPayoutConfig.Multipliers
	}
	if cfg.Payout.DefaultMultiplier == 0 {
		cfg.Payout.DefaultMultiplier = DefaultPayoutConfig.DefaultMultiplier
	}

	return &cfg
}
