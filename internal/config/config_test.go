package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("WP_TEST_KEY", "set")
	if got := getEnv("WP_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("getEnv() = %q, want %q", got, "set")
	}
	if got := getEnv("WP_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv() = %q, want fallback", got)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"15m", 15 * time.Minute},
		{"168h", 168 * time.Hour},
		{"garbage", 15 * time.Minute},
		{"", 15 * time.Minute},
	}
	for _, tt := range tests {
		if got := parseDuration(tt.in); got != tt.want {
			t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDSN(t *testing.T) {
	c := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "wedding",
		DBPassword: "secret",
		DBName:     "wedding_planner",
		DBSSLMode:  "require",
	}
	want := "host=db.internal user=wedding password=secret dbname=wedding_planner port=5433 sslmode=require TimeZone=UTC"
	if got := c.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
