package config

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/vokinneberg/askdesk/internal/dispatcher"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"BACKEND_URL", "SERVER_PORT", "OVERLAP_POLICY", "SHOW_CITATIONS", "PROBE_ON_START", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig("askdesk", nil)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	testboil.FailTestIfDiff(t, cfg.BackendURL, "http://127.0.0.1:5000/perguntar")
	testboil.FailTestIfDiff(t, cfg.ServerPort, "8080")
	testboil.FailTestIfDiff(t, cfg.OverlapPolicy, dispatcher.PolicyRace)
	testboil.FailTestIfDiff(t, cfg.ShowCitations, false)
	testboil.FailTestIfDiff(t, cfg.ProbeOnStart, true)
	testboil.FailTestIfDiff(t, cfg.LogLevel, "info")
	testboil.FailTestIfDiff(t, cfg.LogFile, "")
	testboil.FailTestIfDiff(t, len(cfg.Args), 0)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://advisor.example.com/ask")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OVERLAP_POLICY", "cancel-previous")
	t.Setenv("SHOW_CITATIONS", "true")
	t.Setenv("PROBE_ON_START", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("askdesk", nil)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	testboil.FailTestIfDiff(t, cfg.BackendURL, "https://advisor.example.com/ask")
	testboil.FailTestIfDiff(t, cfg.ServerPort, "9090")
	testboil.FailTestIfDiff(t, cfg.OverlapPolicy, dispatcher.PolicyCancelPrevious)
	testboil.FailTestIfDiff(t, cfg.ShowCitations, true)
	testboil.FailTestIfDiff(t, cfg.ProbeOnStart, false)
	testboil.FailTestIfDiff(t, cfg.LogLevel, "debug")
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://advisor.example.com/ask")
	t.Setenv("OVERLAP_POLICY", "cancel-previous")

	cfg, err := LoadConfig("askdesk", []string{
		"-backend-url", "http://localhost:5001/perguntar",
		"-overlap-policy", "ignore-pending",
		"What", "is", "CSS?",
	})
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	testboil.FailTestIfDiff(t, cfg.BackendURL, "http://localhost:5001/perguntar")
	testboil.FailTestIfDiff(t, cfg.OverlapPolicy, dispatcher.PolicyIgnorePending)
	testboil.FailTestIfDiff(t, strings.Join(cfg.Args, " "), "What is CSS?")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "relative backend URL", args: []string{"-backend-url", "/perguntar"}, errContains: "BACKEND_URL"},
		{name: "bad scheme", args: []string{"-backend-url", "ws://127.0.0.1:5000/"}, errContains: "BACKEND_URL"},
		{name: "bad port", args: []string{"-server-port", "http"}, errContains: "SERVER_PORT"},
		{name: "bad policy", args: []string{"-overlap-policy", "newest"}, errContains: "unknown overlap policy"},
		{name: "unknown flag", args: []string{"-nope"}, errContains: "failed to parse flags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BACKEND_URL", "")
			t.Setenv("SERVER_PORT", "")
			t.Setenv("OVERLAP_POLICY", "")

			_, err := LoadConfig("askdesk", tt.args)
			if err == nil {
				t.Fatalf("LoadConfig(%v) expected error but got nil", tt.args)
			}
			testboil.AssertStringContains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadConfig_Help(t *testing.T) {
	_, err := LoadConfig("askdesk", []string{"-help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("LoadConfig(-help) error = %v, want flag.ErrHelp", err)
	}
}

func TestUsage(t *testing.T) {
	usage := Usage("askdesk")
	for _, name := range []string{"-backend-url", "-server-port", "-overlap-policy", "-show-citations", "-probe", "-log-level", "-log-file"} {
		testboil.AssertStringContains(t, usage, name)
	}
}
