package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	LogLevel  string          `toml:"log_level"`
	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Badge     BadgeConfigs    `toml:"badge"`
	Coin      CoinConfigs     `toml:"coin"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`

	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type BadgeConfigs struct {
	// Catalog overrides the built-in badge catalog. Each map must carry a
	// "type" key understood by the badge factory. Leave empty to use the
	// default catalog.
	Catalog []map[string]any `toml:"catalog"`
}

type CoinConfigs struct {
	TaskReward     int64 `toml:"task_reward"`
	AllClearBonus  int64 `toml:"all_clear_bonus"`
	QuizReward     int64 `toml:"quiz_reward"`
	SnowflakeNode  int64 `toml:"snowflake_node"`
	MaxHistorySize int   `toml:"max_history_size"`
}

// Load reads the TOML file at path. The database password can be overridden
// with the DB_PASSWORD environment variable so secrets stay out of the file.
func Load(path string) (*Configs, error) {
	cfg := &Configs{
		LogLevel: "INFO",
		ApiServer: ServerConfigs{
			Port:         "8080",
			DefaultLimit: 20,
			MaxLimit:     50,
		},
		Coin: CoinConfigs{
			TaskReward:     1,
			AllClearBonus:  3,
			QuizReward:     2,
			MaxHistorySize: 100,
		},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("cannot decode config file: %w", err)
		}
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	return cfg, nil
}
