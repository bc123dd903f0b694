package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const minSecretLen = 32

type config struct {
	Port         string
	LogLevel     string
	JWTSecret    string
	OperatorUser string
	OperatorHash string
	OperatorPass string
	MetricsToken string
	MaxItems     int
	SeedDemo     bool
}

func loadConfig() (config, error) {
	cfg := config{
		Port:         getenv("PORT", "8080"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		OperatorUser: getenv("OPERATOR_USER", "manager"),
		OperatorHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
		OperatorPass: os.Getenv("OPERATOR_PASSWORD"),
		MetricsToken: os.Getenv("METRICS_TOKEN"),
	}

	var err error
	if cfg.MaxItems, err = strconv.Atoi(getenv("MAX_ITEMS", "100")); err != nil || cfg.MaxItems <= 0 {
		return config{}, errors.New("MAX_ITEMS must be a positive integer")
	}
	if cfg.SeedDemo, err = strconv.ParseBool(getenv("SEED_DEMO", "false")); err != nil {
		return config{}, fmt.Errorf("SEED_DEMO: %w", err)
	}

	if len(cfg.JWTSecret) < minSecretLen {
		return config{}, fmt.Errorf("JWT_SECRET is required and must be at least %d chars", minSecretLen)
	}
	if cfg.OperatorHash == "" && cfg.OperatorPass == "" {
		return config{}, errors.New("OPERATOR_PASSWORD_HASH or OPERATOR_PASSWORD is required")
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
