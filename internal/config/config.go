package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// DB
	DBDriver string // "mysql" or "sqlite"
	DBDSN    string

	// how many recent turns are fed back into the prompt
	ContextWindowSize int

	// AI provider
	AIProvider    string
	HFBaseURL     string
	HFToken       string
	HFModel       string
	OllamaBaseURL string
	OllamaModel   string

	// optional context cache; disabled when RedisAddr is empty
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "mysql"
	}

	// DSN demo:
	// app:apppass@tcp(127.0.0.1:3306)/cheerchat?charset=utf8mb4&parseTime=true&loc=Local
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		if driver == "sqlite" {
			dsn = "cheerchat.db"
		} else {
			dsn = "app:apppass@tcp(127.0.0.1:3306)/cheerchat?charset=utf8mb4&parseTime=true&loc=Local"
		}
	}

	windowSize := 3
	if v := os.Getenv("CONTEXT_WINDOW_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			windowSize = n
		}
	}

	aiProvider := os.Getenv("AI_PROVIDER")
	if aiProvider == "" {
		aiProvider = "huggingface"
	}

	hfBaseURL := os.Getenv("HF_BASE_URL")
	if hfBaseURL == "" {
		hfBaseURL = "https://api-inference.huggingface.co"
	}
	hfModel := os.Getenv("HF_MODEL")
	if hfModel == "" {
		hfModel = "HuggingFaceH4/zephyr-7b-beta"
	}

	ollamaBaseURL := os.Getenv("OLLAMA_BASE_URL")
	if ollamaBaseURL == "" {
		ollamaBaseURL = "http://localhost:11434"
	}
	ollamaModel := os.Getenv("OLLAMA_MODEL")
	if ollamaModel == "" {
		ollamaModel = "llama3:latest"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return Config{
		Port: port,

		DBDriver: driver,
		DBDSN:    dsn,

		ContextWindowSize: windowSize,

		AIProvider:    aiProvider,
		HFBaseURL:     hfBaseURL,
		HFToken:       os.Getenv("HF_TOKEN"),
		HFModel:       hfModel,
		OllamaBaseURL: ollamaBaseURL,
		OllamaModel:   ollamaModel,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
	}
}
