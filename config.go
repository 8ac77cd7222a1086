package archon

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

type WorldConfig struct {
	LogLevel      string `config:"ARCHON_LOG_LEVEL"`
	LogPretty     bool   `config:"ARCHON_LOG_PRETTY"`
	StatsdAddress string `config:"ARCHON_STATSD_ADDRESS"`
	Port          string `config:"ARCHON_PORT"`
}

func defaultWorldConfig() WorldConfig {
	return WorldConfig{
		LogLevel:      "info",
		LogPretty:     false,
		StatsdAddress: "",
		Port:          "4040",
	}
}

func GetWorldConfig() (WorldConfig, error) {
	cfg := defaultWorldConfig()
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load world config from environment")
	}
	return cfg, nil
}
