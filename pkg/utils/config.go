package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// StoreConfig configures the record store backend. Backend selects the
// implementation once at startup: "live" talks to the remote store,
// "memory" runs against the in-process fixture store.
type StoreConfig struct {
	Backend        string
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
	// FetchLimit bounds how many records a single query may pull before
	// client-side pagination slicing.
	FetchLimit int
}

type JWTConfig struct {
	Secret string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORE_BACKEND", "live")
	viper.SetDefault("STORE_TIMEOUT_SECONDS", 15)
	viper.SetDefault("STORE_FETCH_LIMIT", 500)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			Backend:        viper.GetString("STORE_BACKEND"),
			BaseURL:        viper.GetString("STORE_BASE_URL"),
			APIKey:         viper.GetString("STORE_API_KEY"),
			TimeoutSeconds: viper.GetInt("STORE_TIMEOUT_SECONDS"),
			FetchLimit:     viper.GetInt("STORE_FETCH_LIMIT"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
	}

	return config, nil
}
