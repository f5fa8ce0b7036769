package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	S3       S3Config
	Auth     AuthConfig
	Creation CreationConfig
	Ticket   TicketConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
	MaxUploadBytes  int64
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// S3Config 指向 event-media bucket；Endpoint 為空時使用 AWS 預設端點
type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
	UsePathStyle    bool
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// CreationConfig 活動建立流程的並行上限；0 代表不限制
type CreationConfig struct {
	MaxParallelUploads int
	MaxParallelTickets int
	ProgressTTL        time.Duration
}

type TicketConfig struct {
	MaxPerUser  int
	QueueStream bool
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env 不存在時直接使用環境變數
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		S3:       GetS3Config(),
		Auth:     GetAuthConfig(),
		Creation: GetCreationConfig(),
		Ticket:   GetTicketConfig(),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Port: "8080", ShutdownTimeout: time.Second, MaxUploadBytes: 8 << 20},
		Database: *testConfig,
		Redis:    testRedisConfig,
		S3: S3Config{
			Endpoint:        "http://localhost:9000",
			Region:          "us-east-1",
			AccessKeyID:     "minioadmin",
			SecretAccessKey: "minioadmin",
			Bucket:          "event-media-test",
			PublicBaseURL:   "http://localhost:9000/event-media-test",
			UsePathStyle:    true,
		},
		Auth:     AuthConfig{JWTSecret: "test-secret", Issuer: "ticketee-test"},
		Creation: CreationConfig{ProgressTTL: time.Minute},
		Ticket:   TicketConfig{MaxPerUser: 10},
		LogLevel: "debug",
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_MB", 32)) << 20,
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}
}

func GetS3Config() S3Config {
	return S3Config{
		Endpoint:        getEnv("S3_ENDPOINT", ""),
		Region:          getEnv("S3_REGION", "us-east-1"),
		AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		Bucket:          getEnv("S3_BUCKET", "event-media"),
		PublicBaseURL:   getEnv("S3_PUBLIC_BASE_URL", ""),
		UsePathStyle:    getEnvBool("S3_USE_PATH_STYLE", true),
	}
}

func GetAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret: getEnv("JWT_SECRET", ""),
		Issuer:    getEnv("JWT_ISSUER", ""),
	}
}

func GetCreationConfig() CreationConfig {
	return CreationConfig{
		MaxParallelUploads: getEnvInt("CREATION_MAX_PARALLEL_UPLOADS", 4),
		MaxParallelTickets: getEnvInt("CREATION_MAX_PARALLEL_TICKETS", 0),
		ProgressTTL:        getEnvDuration("CREATION_PROGRESS_TTL", 30*time.Minute),
	}
}

func GetTicketConfig() TicketConfig {
	return TicketConfig{
		MaxPerUser:  getEnvInt("TICKET_MAX_PER_USER", 10),
		QueueStream: getEnvBool("TICKET_QUEUE_STREAM", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		panic(err)
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		panic(err)
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}
	return d
}
