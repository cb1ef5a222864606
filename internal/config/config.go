package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/joho/godotenv"

	"github.com/vokinneberg/askdesk/internal/dispatcher"
	"github.com/vokinneberg/askdesk/internal/types"
)

// Config holds all configuration for the application
type Config struct {
	// Backend configuration
	BackendURL string

	// Web host configuration
	ServerPort string

	// Dispatcher configuration
	OverlapPolicy dispatcher.Policy
	ShowCitations bool
	ProbeOnStart  bool

	// Logging configuration
	LogLevel string
	LogFile  string

	// Args are the positional arguments left after flags
	Args []string
}

// flagValues are the raw flag destinations
type flagValues struct {
	backendURL    *string
	serverPort    *string
	overlapPolicy *string
	showCitations *bool
	probeOnStart  *bool
	logLevel      *string
	logFile       *string
}

// newFlagSet defines all flags with their environment defaults
func newFlagSet(name string, out io.Writer) (*flag.FlagSet, *flagValues) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	return fs, &flagValues{
		backendURL:    fs.String("backend-url", getEnv("BACKEND_URL", types.DefaultBackendURL), "Question endpoint of the backend"),
		serverPort:    fs.String("server-port", getEnv("SERVER_PORT", "8080"), "Web host port"),
		overlapPolicy: fs.String("overlap-policy", getEnv("OVERLAP_POLICY", string(dispatcher.PolicyRace)), "Question submitted while another is pending: race, ignore-pending or cancel-previous"),
		showCitations: fs.Bool("show-citations", getEnvAsBool("SHOW_CITATIONS", false), "List the answer's citations below it"),
		probeOnStart:  fs.Bool("probe", getEnvAsBool("PROBE_ON_START", true), "Check once at start whether the backend is reachable"),
		logLevel:      fs.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level: debug, info, warn or error"),
		logFile:       fs.String("log-file", getEnv("LOG_FILE", ""), "Write logs to this file instead of stderr"),
	}
}

// LoadConfig loads configuration from a .env file, environment variables
// and command-line flags. Flags take precedence over environment
// variables, which take precedence over the .env file.
func LoadConfig(name string, args []string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	fs, v := newFlagSet(name, io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg := &Config{
		BackendURL:    *v.backendURL,
		ServerPort:    *v.serverPort,
		ShowCitations: *v.showCitations,
		ProbeOnStart:  *v.probeOnStart,
		LogLevel:      *v.logLevel,
		LogFile:       *v.logFile,
		Args:          fs.Args(),
	}

	policy, err := dispatcher.ParsePolicy(*v.overlapPolicy)
	if err != nil {
		return nil, err
	}
	cfg.OverlapPolicy = policy

	// Validate fields
	u, err := url.Parse(cfg.BackendURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("BACKEND_URL must be an absolute http(s) URL, got %q", cfg.BackendURL)
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return nil, fmt.Errorf("SERVER_PORT must be a number, got %q", cfg.ServerPort)
	}

	return cfg, nil
}

// Usage returns the flag defaults of the named program
func Usage(name string) string {
	var b bytes.Buffer
	fs, _ := newFlagSet(name, &b)
	fs.PrintDefaults()
	return b.String()
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	switch {
	case misc.Truthy(value):
		return true
	case misc.Falsy(value):
		return false
	}
	return defaultValue
}
