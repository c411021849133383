package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量 SOCIALS_* 可覆盖文件中的值
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("SOCIALS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("jwt.issuer", "socials")
	viper.SetDefault("jwt.expire_hours", 72)
	viper.SetDefault("search.backend", SearchBackendDB)
	viper.SetDefault("cron.like_count_spec", "0 0 4 * * *")
	viper.SetDefault("elastic.indices.user_index", "socials_users")
	viper.SetDefault("database.auto_migrate", true)
}

const (
	SearchBackendDB      = "db"
	SearchBackendElastic = "elastic"
)
