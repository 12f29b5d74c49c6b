package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Identity IdentityConfig
	Storage  StorageConfig
	CORS     CORSConfig
	Paging   PagingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// AuthConfig selects the deployment's guard strategy: "identity" verifies
// bearer tokens against the identity provider, "api_key" protects the whole
// surface with a static key.
type AuthConfig struct {
	Mode   string
	APIKey string
}

const (
	AuthModeIdentity = "identity"
	AuthModeAPIKey   = "api_key"
)

type IdentityConfig struct {
	URL        string
	ServiceKey string
	// JWTSecret, when set, switches token verification to local HS256
	// parsing instead of calling the provider on every request.
	JWTSecret string
}

type StorageConfig struct {
	Bucket string
}

type CORSConfig struct {
	Origins []string
}

type PagingConfig struct {
	MoviePageSize     int
	ReviewPageSize    int
	DetailReviewLimit int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("AUTH_MODE", AuthModeIdentity)
	viper.SetDefault("STORAGE_BUCKET", "profile-image")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("MOVIE_PAGE_SIZE", 24)
	viper.SetDefault("REVIEW_PAGE_SIZE", 5)
	viper.SetDefault("DETAIL_REVIEW_LIMIT", 5)

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
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			Mode:   viper.GetString("AUTH_MODE"),
			APIKey: viper.GetString("API_KEY"),
		},
		Identity: IdentityConfig{
			URL:        viper.GetString("IDENTITY_URL"),
			ServiceKey: viper.GetString("IDENTITY_SERVICE_KEY"),
			JWTSecret:  viper.GetString("IDENTITY_JWT_SECRET"),
		},
		Storage: StorageConfig{
			Bucket: viper.GetString("STORAGE_BUCKET"),
		},
		CORS: CORSConfig{
			Origins: splitList(viper.GetString("CORS_ORIGINS")),
		},
		Paging: PagingConfig{
			MoviePageSize:     viper.GetInt("MOVIE_PAGE_SIZE"),
			ReviewPageSize:    viper.GetInt("REVIEW_PAGE_SIZE"),
			DetailReviewLimit: viper.GetInt("DETAIL_REVIEW_LIMIT"),
		},
	}

	return config, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
