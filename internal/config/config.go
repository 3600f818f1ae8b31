package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hiagocrazzy2017/stop-mania-dash/logger"
)

// Load pulls in .env if one exists. Everything has a default, so a missing
// file is fine.
func Load() {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using process environment")
	}
}

func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "3000"
}

func RoundSeconds() int {
	return envInt("ROUND_SECONDS", 60)
}

func MaxPlayers() int {
	return envInt("MAX_PLAYERS", 8)
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logger.Error("invalid %s=%q, falling back to %d", key, v, def)
		return def
	}
	return n
}
