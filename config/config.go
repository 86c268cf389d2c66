package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Catalog  Catalog
	LogLevel string
}

type Server struct {
	Port string
}

type Database struct {
	// Path of the sqlite file backing the key-value store. Empty means an
	// in-memory database (progress is lost on restart).
	Path string
}

type Catalog struct {
	// SourceURL points at a remote catalogue API. Empty means the embedded
	// static catalogue is used.
	SourceURL string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "tarsius.db")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Path = viper.GetString("DATABASE_PATH")
	config.Catalog.SourceURL = viper.GetString("CATALOG_SOURCE_URL")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
