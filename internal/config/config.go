package config

import (
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration

	// Operator account for issuing tokens
	OperatorUser string
	OperatorPass string

	// External face recognition/database service
	FaceAPIBaseURL string
	FaceAPITimeout time.Duration

	// Rate limiting for the API group
	RateLimit  int
	RateWindow time.Duration
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	operatorUser := os.Getenv("OPERATOR_USER")
	if operatorUser == "" {
		operatorUser = "operator"
	}

	operatorPass := os.Getenv("OPERATOR_PASS")
	if operatorPass == "" {
		operatorPass = "operator-pass-change-in-production"
	}

	faceAPIBaseURL := os.Getenv("FACE_API_BASE_URL")
	if faceAPIBaseURL == "" {
		faceAPIBaseURL = "http://localhost:5000"
	}

	return &Config{
		Port:           port,
		JWTSecret:      jwtSecret,
		TokenTTL:       durationEnv("TOKEN_TTL_MINUTES", 60) * time.Minute,
		OperatorUser:   operatorUser,
		OperatorPass:   operatorPass,
		FaceAPIBaseURL: faceAPIBaseURL,
		FaceAPITimeout: durationEnv("FACE_API_TIMEOUT_SECONDS", 15) * time.Second,
		RateLimit:      intEnv("RATE_LIMIT", 120),
		RateWindow:     time.Minute,
	}
}

func intEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func durationEnv(key string, fallback int) time.Duration {
	return time.Duration(intEnv(key, fallback))
}
