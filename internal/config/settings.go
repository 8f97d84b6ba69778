package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings — параметры запуска, которые можно менять без пересборки.
type Settings struct {
	Ruleset     string `mapstructure:"ruleset"`
	Seed        int64  `mapstructure:"seed"`
	LogLevel    string `mapstructure:"logLevel"`
	LogFile     string `mapstructure:"logFile"`
	TPS         int    `mapstructure:"tps"`
	TowersFile  string `mapstructure:"towersFile"`
	EnemiesFile string `mapstructure:"enemiesFile"`
}

// Load reads settings from an optional config file and TD_* environment
// variables. An empty path means defaults plus environment only.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetDefault("ruleset", "styled")
	v.SetDefault("seed", 0)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("tps", TargetTPS)
	v.SetDefault("towersFile", "")
	v.SetDefault("enemiesFile", "")

	v.SetEnvPrefix("TD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.TPS <= 0 {
		return Settings{}, fmt.Errorf("tps must be positive, got %d", s.TPS)
	}
	return s, nil
}
