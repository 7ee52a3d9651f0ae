package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int
	MaxConnections  int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MediaBucket    string
	MediaPublicURL string

	RedisAddr     string
	RedisPassword string
	StatsCacheTTL time.Duration

	JWTSecret    string
	JWTTTL       time.Duration
	CookieSecure bool

	StagingDir        string
	MaxUploadBytes    int64
	ThumbnailMaxWidth int
}

var required = []string{
	"MARIADB_DSN",
	"MARIADB_MAX_OPEN_CONN",
	"MARIADB_MAX_IDLE_CONNS",
	"MARIADB_CONN_MAX_LIFETIME",
	"SERVER_PORT",
	"MINIO_ENDPOINT",
	"MINIO_ACCESS_KEY",
	"MINIO_SECRET_KEY",
	"JWT_SECRET",
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	for _, key := range required {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	useSSL := viper.GetBool("MINIO_USE_SSL")
	endpoint := viper.GetString("MINIO_ENDPOINT")
	publicURL := viper.GetString("MEDIA_PUBLIC_URL")
	if publicURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + endpoint
	}

	stagingDir := viper.GetString("STAGING_DIR")
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),
		MaxConnections:  viper.GetInt("MAX_CONNECTIONS"),

		MinioEndpoint:  endpoint,
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    useSSL,
		MediaBucket:    stringOr("MEDIA_BUCKET", "videotube"),
		MediaPublicURL: strings.TrimRight(publicURL, "/"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),
		StatsCacheTTL: time.Duration(intOr("STATS_CACHE_TTL", 60)) * time.Second,

		JWTSecret:    viper.GetString("JWT_SECRET"),
		JWTTTL:       time.Duration(intOr("JWT_TTL", 86400)) * time.Second,
		CookieSecure: viper.GetBool("COOKIE_SECURE"),

		StagingDir:        stagingDir,
		MaxUploadBytes:    int64(intOr("MAX_UPLOAD_BYTES", 512<<20)),
		ThumbnailMaxWidth: intOr("THUMBNAIL_MAX_WIDTH", 1280),
	}, nil
}

func stringOr(key, def string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return def
}

func intOr(key string, def int) int {
	if v := viper.GetInt(key); v > 0 {
		return v
	}
	return def
}
