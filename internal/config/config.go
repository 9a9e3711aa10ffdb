package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port  string
	DBDSN string

	// AI provider
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	AITimeout     time.Duration

	// password hashing / policy
	BcryptCost            int
	PasswordMinLength     int
	PasswordRequireLetter bool
	PasswordRequireDigit  bool

	// optional answer cache
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	AnswerTTL     time.Duration

	CORSOrigins []string
}

// Load reads configuration from the environment. PORT, DB_DSN,
// OPENAI_API_KEY and BCRYPT_COST are required; a missing value aborts
// startup instead of proceeding with undefined behavior.
func Load() Config {
	port := mustEnv("PORT")
	dsn := mustEnv("DB_DSN")
	apiKey := mustEnv("OPENAI_API_KEY")

	cost, err := strconv.Atoi(mustEnv("BCRYPT_COST"))
	if err != nil || cost < 4 || cost > 31 {
		log.Fatalf("BCRYPT_COST must be an integer in [4,31], got %q", os.Getenv("BCRYPT_COST"))
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-3.5-turbo"
	}

	aiTimeout := 60 * time.Second
	if v := os.Getenv("AI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			aiTimeout = d
		}
	}

	minLen := 8
	if v := os.Getenv("PASSWORD_MIN_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			minLen = n
		}
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	answerTTL := 30 * time.Minute
	if v := os.Getenv("ANSWER_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			answerTTL = d
		}
	}

	var origins []string
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Config{
		Port:  port,
		DBDSN: dsn,

		OpenAIAPIKey:  apiKey,
		OpenAIBaseURL: baseURL,
		OpenAIModel:   model,
		AITimeout:     aiTimeout,

		BcryptCost:            cost,
		PasswordMinLength:     minLen,
		PasswordRequireLetter: envBool("PASSWORD_REQUIRE_LETTER", true),
		PasswordRequireDigit:  envBool("PASSWORD_REQUIRE_DIGIT", true),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		AnswerTTL:     answerTTL,

		CORSOrigins: origins,
	}
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s environment variable is required", key)
	}
	return v
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
