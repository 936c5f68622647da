package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	old := os.Stdout
	rp, wp, _ := os.Pipe()
	os.Stdout = wp

	printBuildInfo()

	wp.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(rp)

	if !bytes.Contains(buf.Bytes(), []byte("Starting service version")) {
		t.Errorf("unexpected build info output: %s", buf.String())
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		pgHost, pgPort, _, _, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		_, redisPort, redisDB, _,
		_, kafkaTopic,
		baseURL, _, _, _,
		secureCookies,
		err := parseConfig("does-not-exist.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appHost != "localhost" || appPort != "8080" {
		t.Errorf("unexpected app defaults: %s:%s", appHost, appPort)
	}
	if logLevel != "info" {
		t.Errorf("unexpected log level: %s", logLevel)
	}
	if pgHost != "localhost" || pgPort != 5432 || pgDB != "cancha" {
		t.Errorf("unexpected postgres defaults: %s:%d/%s", pgHost, pgPort, pgDB)
	}
	if pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected pool defaults: %d/%d", pgMaxOpenConns, pgMaxIdleConns)
	}
	if redisPort != 6379 || redisDB != 0 {
		t.Errorf("unexpected redis defaults: %d/%d", redisPort, redisDB)
	}
	if kafkaTopic != "" {
		t.Errorf("expected notifications disabled by default, got topic %q", kafkaTopic)
	}
	if baseURL != "http://localhost:8080" {
		t.Errorf("unexpected base URL: %s", baseURL)
	}
	if secureCookies {
		t.Error("expected secure cookies off by default")
	}
}

func TestParseConfig_Overrides(t *testing.T) {
	resetEnv()
	os.Setenv("APP_PORT", "9090")
	os.Setenv("POSTGRES_DB", "cancha_test")
	os.Setenv("KAFKA_NOTIFICATIONS_TOPIC", "cancha.notifications")
	os.Setenv("APP_SECURE_COOKIES", "true")
	defer resetEnv()

	_, appPort, _,
		_, _, _, _, pgDB,
		_, _,
		_, _, _, _,
		_, kafkaTopic,
		_, _, _, _,
		secureCookies,
		err := parseConfig("does-not-exist.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appPort != "9090" {
		t.Errorf("expected port override, got %s", appPort)
	}
	if pgDB != "cancha_test" {
		t.Errorf("expected db override, got %s", pgDB)
	}
	if kafkaTopic != "cancha.notifications" {
		t.Errorf("expected kafka topic override, got %s", kafkaTopic)
	}
	if !secureCookies {
		t.Error("expected secure cookies on")
	}
}

func TestParseConfig_InvalidPort(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")
	defer resetEnv()

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		_, _, _, _,
		_,
		err := parseConfig("does-not-exist.env")
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}
