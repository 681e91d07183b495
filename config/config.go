package config

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// MaxQuizSampleSize caps the number of questions drawn into one attempt.
const MaxQuizSampleSize = 8

var (
	ErrMissingSessionSecret = errors.New("config: SESSION_SECRET is required")
	ErrMissingJWTSecret     = errors.New("config: JWT_SECRET is required")
)

type Config struct {
	Env      string
	LogLevel string
	Server   Server
	Database Database
	Auth     Auth
	SendGrid SendGrid
	Quiz     Quiz
	Admin    Admin
}

type Server struct {
	Port             string
	CorsAllowOrigins []string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Auth struct {
	SessionSecret string
	JWTSecret     string
	JWTTTLHours   int
}

type SendGrid struct {
	APIKey    string
	BaseURL   string
	FromEmail string
	FromName  string
}

type Quiz struct {
	SampleSize int
}

// Admin is the account created at startup when it does not exist yet.
// Bootstrapping is skipped while Email is empty.
type Admin struct {
	Name     string
	Email    string
	Password string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("JWT_TTL_HOURS", 72)
	viper.SetDefault("SENDGRID_BASE_URL", "https://api.sendgrid.com")
	viper.SetDefault("QUIZ_SAMPLE_SIZE", MaxQuizSampleSize)
	viper.SetDefault("ADMIN_NAME", "Administrator")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Env = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.CorsAllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Auth.SessionSecret = viper.GetString("SESSION_SECRET")
	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.JWTTTLHours = viper.GetInt("JWT_TTL_HOURS")

	config.SendGrid.APIKey = viper.GetString("SENDGRID_API_KEY")
	config.SendGrid.BaseURL = viper.GetString("SENDGRID_BASE_URL")
	config.SendGrid.FromEmail = viper.GetString("SENDGRID_FROM_EMAIL")
	config.SendGrid.FromName = viper.GetString("SENDGRID_FROM_NAME")

	config.Quiz.SampleSize = viper.GetInt("QUIZ_SAMPLE_SIZE")
	if config.Quiz.SampleSize <= 0 || config.Quiz.SampleSize > MaxQuizSampleSize {
		log.Warn().Int("sampleSize", config.Quiz.SampleSize).Msg("QUIZ_SAMPLE_SIZE out of range, using default")
		config.Quiz.SampleSize = MaxQuizSampleSize
	}

	config.Admin.Name = viper.GetString("ADMIN_NAME")
	config.Admin.Email = viper.GetString("ADMIN_EMAIL")
	config.Admin.Password = viper.GetString("ADMIN_PASSWORD")

	if err := config.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return nil, err
	}

	log.Info().
		Str("env", config.Env).
		Str("port", config.Server.Port).
		Str("dbHost", config.Database.Host).
		Str("dbName", config.Database.Name).
		Bool("mailEnabled", config.SendGrid.APIKey != "").
		Int("quizSampleSize", config.Quiz.SampleSize).
		Msg("Config loaded")
	return &config, nil
}

// Validate rejects settings the server cannot run safely with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.SessionSecret) == "" {
		return ErrMissingSessionSecret
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		return errors.New("config: ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}
	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production") || strings.EqualFold(c.Env, "prod")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
