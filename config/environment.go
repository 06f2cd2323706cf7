package config

import (
	"os"
	"strings"
)

type Environment struct {
	IsDevelopment  bool
	AllowedOrigins []string
}

var Env Environment

func init() {
	origins := os.Getenv("ALLOWED_ORIGINS")

	// No configured origins means local development
	isDev := origins == ""
	allowed := []string{"http://localhost:3000"}
	if !isDev {
		allowed = strings.Split(origins, ",")
		for i := range allowed {
			allowed[i] = strings.TrimSpace(allowed[i])
		}
	}

	Env = Environment{
		IsDevelopment:  isDev,
		AllowedOrigins: allowed,
	}
}
