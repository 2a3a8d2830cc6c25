package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	if AppConfig.AppPort == "" {
		t.Error("APP_PORT default missing")
	}
	if AppConfig.DatabaseName == "" {
		t.Error("DATABASE_NAME default missing")
	}
	if got := BookingLeadTime(); got != 24*time.Hour {
		t.Errorf("BookingLeadTime() = %v, want 24h", got)
	}
	if got := GcalCacheTTL(); got != 5*time.Minute {
		t.Errorf("GcalCacheTTL() = %v, want 5m", got)
	}
	if got := GcalFetchTimeout(); got != 10*time.Second {
		t.Errorf("GcalFetchTimeout() = %v, want 10s", got)
	}
}

func TestIsProduction(t *testing.T) {
	old := AppConfig.Env
	defer func() { AppConfig.Env = old }()

	AppConfig.Env = "production"
	if !IsProduction() {
		t.Error("IsProduction() = false for production env")
	}
	AppConfig.Env = "development"
	if IsProduction() {
		t.Error("IsProduction() = true for development env")
	}
}
