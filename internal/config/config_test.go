package config_test

import (
	"testing"

	"jobshield/verify-service/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/verify")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CLASSIFIER_URL", "http://localhost:9000")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("VERIFY_PORT", "")
	t.Setenv("SUBMISSION_RETENTION_DAYS", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8083" {
		t.Errorf("Port = %q, want default 8083", cfg.Port)
	}
	if cfg.RetentionDays != 90 {
		t.Errorf("RetentionDays = %d, want default 90", cfg.RetentionDays)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")
	if _, err := config.Load(); err == nil {
		t.Error("expected error when DATABASE_URL missing, got nil")
	}

	setRequired(t)
	t.Setenv("CLASSIFIER_URL", "")
	if _, err := config.Load(); err == nil {
		t.Error("expected error when CLASSIFIER_URL missing, got nil")
	}
}

func TestLoad_RetentionValidation(t *testing.T) {
	setRequired(t)

	t.Setenv("SUBMISSION_RETENTION_DAYS", "30")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RetentionDays != 30 {
		t.Errorf("RetentionDays = %d, want 30", cfg.RetentionDays)
	}

	t.Setenv("SUBMISSION_RETENTION_DAYS", "-1")
	if _, err := config.Load(); err == nil {
		t.Error("expected error for negative retention, got nil")
	}

	t.Setenv("SUBMISSION_RETENTION_DAYS", "soon")
	if _, err := config.Load(); err == nil {
		t.Error("expected error for non-numeric retention, got nil")
	}
}
