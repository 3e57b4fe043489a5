package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	TimeZone    string
	ReportDir   string
	ReportCron  string
	WarmupCron  string
	LogLevel    slog.Level
	APIBaseURL  string
	DBLogSilent bool
}

// LoadConfig reads the environment after loading envFile, when it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("REDIS_DB: %w", err)
	}

	var level slog.Level
	if err = level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	port := getEnv("HTTP_PORT", "8082")
	return Config{
		HTTPPort:      port,
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "flowerdelivery"),
		DBSslMode:     getEnv("DB_SSLMODE", "disable"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		TimeZone:      getEnv("APP_TIMEZONE", "Asia/Seoul"),
		ReportDir:     getEnv("REPORT_DIR", "reports"),
		ReportCron:    os.Getenv("REPORT_CRON"),
		WarmupCron:    os.Getenv("CONTACT_CACHE_WARMUP_CRON"),
		LogLevel:      level,
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:"+port),
		DBLogSilent:   strings.EqualFold(os.Getenv("DB_LOG_SILENT"), "true"),
	}, nil
}

// DSN is the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
