package config

import (
	"log"
	"os"
	"strconv"

	"matchfeed-be/internal/constant"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Match    MatchConfig
	Feed     FeedConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type MatchConfig struct {
	TopK             int
	BatchSize        int
	BatchPauseMs     int
	RatingMinCount   int
	AlgorithmVersion string
}

type FeedConfig struct {
	DefaultCount      int
	ActorCap          int
	SegmentCount      int
	SegmentSize       int
	PresortTTLMinutes int
	SeenWindowHours   int
	RecomputeTopic    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Match: MatchConfig{
			TopK:             getEnvAsInt("MATCH_TOP_K", constant.DefaultTopK),
			BatchSize:        getEnvAsInt("MATCH_BATCH_SIZE", constant.DefaultBatchSize),
			BatchPauseMs:     getEnvAsInt("MATCH_BATCH_PAUSE_MS", constant.DefaultBatchPauseMs),
			RatingMinCount:   getEnvAsInt("MATCH_RATING_MIN_COUNT", constant.DefaultRatingMinimum),
			AlgorithmVersion: getEnv("MATCH_ALGORITHM_VERSION", constant.AlgorithmVersion),
		},
		Feed: FeedConfig{
			DefaultCount:      getEnvAsInt("FEED_DEFAULT_COUNT", constant.DefaultFeedCount),
			ActorCap:          getEnvAsInt("FEED_ACTOR_CAP", constant.DefaultActorCap),
			SegmentCount:      getEnvAsInt("FEED_SEGMENT_COUNT", constant.DefaultSegmentCount),
			SegmentSize:       getEnvAsInt("FEED_SEGMENT_SIZE", constant.DefaultSegmentSize),
			PresortTTLMinutes: getEnvAsInt("FEED_PRESORT_TTL_MINUTES", constant.PresortTTLMinutes),
			SeenWindowHours:   getEnvAsInt("FEED_SEEN_WINDOW_HOURS", constant.SeenWindowHours),
			RecomputeTopic:    getEnv("FEED_RECOMPUTE_TOPIC", constant.TopicPresortRecompute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
