package bootstrap

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBUri                 string `mapstructure:"DB_URI"`
	DBName                string `mapstructure:"DB_NAME"`
	PlaylistCollection    string `mapstructure:"PLAYLIST_COLLECTION"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
}

func NewEnv() *Env {
	viper.SetConfigFile(".env")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("CONTEXT_TIMEOUT", 10)
	viper.SetDefault("DB_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "playlistdb")
	viper.SetDefault("PLAYLIST_COLLECTION", "playlists")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_HOUR", 2)

	// No default for the token secret, so it must be bound explicitly
	// for Unmarshal to see it when only the process environment sets it.
	_ = viper.BindEnv("ACCESS_TOKEN_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("no .env file found, using environment and defaults")
	}
	viper.AutomaticEnv()

	env := Env{}
	if err := viper.Unmarshal(&env); err != nil {
		log.Fatal().Err(err).Msg("environment can't be loaded")
	}

	if env.AccessTokenSecret == "" {
		log.Warn().Msg("ACCESS_TOKEN_SECRET is empty, issued tokens are not secure")
	}

	if env.AppEnv == "development" {
		log.Info().Msg("the app is running in development env")
	}

	return &env
}
