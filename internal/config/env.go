package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func Init() {
	// A missing .env is normal in Lambda; the environment is already populated there.
	_ = godotenv.Load()
	initLogger()
}

func Getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetenvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		Logger.WithField("key", key).Warnf("Invalid integer value %q, using %d", v, fallback)
		return fallback
	}
	return n
}

// GetenvList splits a comma separated variable, dropping blanks.
func GetenvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
