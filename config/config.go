package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver      string
	SQLitePath  string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	TimeZone    string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// AuthConfig controls how bearer tokens and authorization denials are handled.
type AuthConfig struct {
	// CheckRevocation requires every access token to still be registered in Redis.
	CheckRevocation bool
	// MaskForbidden answers a denied by-id request with 404 instead of 403.
	MaskForbidden bool
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_SQLITE_PATH", "gp_surgery.db")
	viper.SetDefault("DB_TIMEZONE", "Europe/London")
	viper.SetDefault("AUTH_CHECK_REVOCATION", true)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 60)

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	window, err := time.ParseDuration(viper.GetString("RATE_LIMIT_WINDOW"))
	if err != nil {
		window = time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Driver:      viper.GetString("DB_DRIVER"),
			SQLitePath:  viper.GetString("DB_SQLITE_PATH"),
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			Name:        viper.GetString("DB_NAME"),
			TimeZone:    viper.GetString("DB_TIMEZONE"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Auth: AuthConfig{
			CheckRevocation: viper.GetBool("AUTH_CHECK_REVOCATION"),
			MaskForbidden:   viper.GetBool("AUTHZ_MASK_FORBIDDEN"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   window,
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return config, nil
}
