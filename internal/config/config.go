package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
}

func LoadConfig() *Config {
	viper.SetDefault("DATABASE_PATH", "ticketoffice.db")
	viper.SetDefault("ADMIN_EMAIL", "admin@admin.com")
	viper.SetDefault("ADMIN_PASSWORD", "test1234")

	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("ADMIN_EMAIL")
	viper.BindEnv("ADMIN_PASSWORD")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
