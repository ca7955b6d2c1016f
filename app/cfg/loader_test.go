package cfg

import (
	"testing"
	"time"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		DBHost:         "localhost",
		DBPort:         "5432",
		DBUser:         "test_user",
		DBPassword:     "test_password",
		DBName:         "test_db",
		DBSSLMode:      "disable",
		Port:           "8080",
		CityConfig:     "./zagreb.yml",
		ScrapeInterval: 86400,
		VenueDelay:     250 * time.Millisecond,
		GeocodeDelay:   200 * time.Millisecond,
		UserAgent:      "Test Agent",
		Timezone:       "UTC",
		Debug:          true,
		Version:        "test-version",
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.CityConfig != "./zagreb.yml" {
		t.Errorf("Expected city config './zagreb.yml', got '%s'", cfg.CityConfig)
	}
	if cfg.ScrapeInterval != 86400 {
		t.Errorf("Expected scrape interval 86400, got %d", cfg.ScrapeInterval)
	}
	if cfg.VenueDelay != 250*time.Millisecond {
		t.Errorf("Expected venue delay 250ms, got %v", cfg.VenueDelay)
	}
	if cfg.GeocodeDelay != 200*time.Millisecond {
		t.Errorf("Expected geocode delay 200ms, got %v", cfg.GeocodeDelay)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("Expected DB host 'localhost', got '%s'", cfg.DBHost)
	}
	if cfg.DBPort != "5432" {
		t.Errorf("Expected DB port '5432', got '%s'", cfg.DBPort)
	}
	if cfg.DBUser != "test_user" {
		t.Errorf("Expected DB user 'test_user', got '%s'", cfg.DBUser)
	}
	if cfg.DBPassword != "test_password" {
		t.Errorf("Expected DB password 'test_password', got '%s'", cfg.DBPassword)
	}
	if cfg.DBName != "test_db" {
		t.Errorf("Expected DB name 'test_db', got '%s'", cfg.DBName)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Expected timezone 'UTC', got '%s'", cfg.Timezone)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}
