package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const EnvDevelopment = "development"

type Config struct {
	Env           string
	HTTP          HTTPConfig
	Database      DatabaseConfig
	Auth          AuthConfig
	Log           LogConfig
	Notifications NotificationsConfig
}

type HTTPConfig struct {
	Port            string
	FrontendURL     string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	JWTSecret    string
	JWTExpiresIn time.Duration
	BcryptCost   int
}

type LogConfig struct {
	Level string
}

type NotificationsConfig struct {
	QueueSize int
}

// IsDevelopment сообщает, можно ли отдавать клиенту детали внутренних ошибок
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// DSN собирает строку подключения для драйвера pgx
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	expiresIn, err := parseExpiry(getEnv("JWT_EXPIRES_IN", "7d"))
	if err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	bcryptCost, err := strconv.Atoi(getEnv("BCRYPT_COST", "12"))
	if err != nil {
		return nil, fmt.Errorf("BCRYPT_COST: %w", err)
	}

	queueSize, err := strconv.Atoi(getEnv("NOTIFICATION_QUEUE_SIZE", "256"))
	if err != nil {
		return nil, fmt.Errorf("NOTIFICATION_QUEUE_SIZE: %w", err)
	}

	cfg := &Config{
		Env: getEnv("APP_ENV", EnvDevelopment),
		HTTP: HTTPConfig{
			Port:            getEnv("HTTP_PORT", "3001"),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
			ShutdownTimeout: shutdownTimeout,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "teamtasks"),
			Password: getEnv("DB_PASSWORD", "teamtasks"),
			DBName:   getEnv("DB_NAME", "team_tasks"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			JWTExpiresIn: expiresIn,
			BcryptCost:   bcryptCost,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Notifications: NotificationsConfig{
			QueueSize: queueSize,
		},
	}

	if cfg.Auth.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
		}
		cfg.Auth.JWTSecret = "dev-secret"
	}

	return cfg, nil
}

// parseExpiry принимает длительности Go ("168h") и в днях ("7d")
func parseExpiry(value string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid duration %q", value)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	return d, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
